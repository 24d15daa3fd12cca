package models

import "time"

// ScheduleItem is one row of the admin schedule view, joined with its
// trainer, room and activity names by the store.
type ScheduleItem struct {
	ID              int64     `db:"id" json:"id"`
	TrainerID       int64     `db:"trainer_id" json:"trainerId"`
	TrainerName     string    `db:"trainer_name" json:"trainerName"`
	RoomID          int64     `db:"room_id" json:"roomId"`
	RoomName        string    `db:"room_name" json:"roomName"`
	ActivityID      int64     `db:"activity_id" json:"activityId"`
	ActivityName    string    `db:"activity_name" json:"activityName"`
	ScheduleDate    time.Time `db:"schedule_date" json:"scheduleDate"`
	StartTime       string    `db:"start_time" json:"startTime"`
	EndTime         string    `db:"end_time" json:"endTime"`
	MaxParticipants int       `db:"max_participants" json:"maxParticipants"`
	Status          string    `db:"status" json:"status"`
	Notes           *string   `db:"notes" json:"notes"`
}

// NewScheduleItem carries the fields for fitness_create_schedule_item.
type NewScheduleItem struct {
	TrainerID       int64
	RoomID          int64
	ActivityID      int64
	ScheduleDate    string
	StartTime       string
	EndTime         string
	MaxParticipants int
	Notes           *string
}

// ScheduleItemUpdate carries the fields for fitness_update_schedule_item.
type ScheduleItemUpdate struct {
	ID              int64
	TrainerID       int64
	RoomID          int64
	ActivityID      int64
	ScheduleDate    string
	StartTime       string
	EndTime         string
	MaxParticipants int
	Status          string
	Notes           *string
}

// Reference rows for the admin schedule editor dropdowns.

type TrainerRef struct {
	ID   int64  `db:"trainer_id" json:"id"`
	Name string `db:"full_name" json:"name"`
}

type RoomRef struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"room_name" json:"name"`
}

type ActivityRef struct {
	ID        int64  `db:"id" json:"id"`
	Title     string `db:"activity_name" json:"title"`
	Direction string `db:"difficulty_level" json:"direction"`
}
