package models

import "time"

// ContractStatus enumerates tutoring contract states.
type ContractStatus string

const (
	ContractStatusActive     ContractStatus = "ACTIVE"
	ContractStatusSuspended  ContractStatus = "SUSPENDED"
	ContractStatusTerminated ContractStatus = "TERMINATED"
)

// Contract binds one guardian's child to a primary and a backup tutor.
// The backup tutor covers sessions the primary cannot attend; makeup
// slots must fit the working windows of both.
type Contract struct {
	ID             string         `db:"id" json:"id"`
	GuardianID     string         `db:"guardian_id" json:"guardian_id"`
	ChildID        string         `db:"child_id" json:"child_id"`
	PrimaryTutorID string         `db:"primary_tutor_id" json:"primary_tutor_id"`
	BackupTutorID  string         `db:"backup_tutor_id" json:"backup_tutor_id"`
	Status         ContractStatus `db:"status" json:"status"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}
