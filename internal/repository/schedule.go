package repository

import (
	"fitness-backend/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// ScheduleRepository wraps the schedule administration stored procedures.
// Business rules (overlap checks, capacity limits) live in the store.
type ScheduleRepository interface {
	ListAdmin() ([]models.ScheduleItem, error)
	Create(item *models.NewScheduleItem) (int64, error)
	Update(item *models.ScheduleItemUpdate) error
	Delete(scheduleID int64) error
	Trainers() ([]models.TrainerRef, error)
	Rooms() ([]models.RoomRef, error)
	Activities() ([]models.ActivityRef, error)
}

type scheduleRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewScheduleRepository(db *sqlx.DB, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{db: db, log: log}
}

// ListAdmin streams the full schedule view row by row. The cursor is released
// on every exit path.
func (r *scheduleRepository) ListAdmin() ([]models.ScheduleItem, error) {
	rows, err := r.db.Queryx(`SELECT * FROM fitness_get_schedule_admin()`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	items := []models.ScheduleItem{}
	for rows.Next() {
		var item models.ScheduleItem
		if err := rows.StructScan(&item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *scheduleRepository) Create(item *models.NewScheduleItem) (int64, error) {
	var id int64
	query := `SELECT fitness_create_schedule_item($1, $2, $3, $4, $5, $6, $7, $8)`
	err := r.db.Get(&id, query,
		item.TrainerID,
		item.RoomID,
		item.ActivityID,
		item.ScheduleDate,
		item.StartTime,
		item.EndTime,
		item.MaxParticipants,
		item.Notes,
	)
	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func (r *scheduleRepository) Update(item *models.ScheduleItemUpdate) error {
	query := `SELECT fitness_update_schedule_item($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(query,
		item.ID,
		item.TrainerID,
		item.RoomID,
		item.ActivityID,
		item.ScheduleDate,
		item.StartTime,
		item.EndTime,
		item.MaxParticipants,
		item.Status,
		item.Notes,
	)
	return mapError(err)
}

func (r *scheduleRepository) Delete(scheduleID int64) error {
	_, err := r.db.Exec(`SELECT fitness_delete_schedule_item($1)`, scheduleID)
	return mapError(err)
}

func (r *scheduleRepository) Trainers() ([]models.TrainerRef, error) {
	refs := []models.TrainerRef{}
	if err := r.db.Select(&refs, `SELECT trainer_id, full_name FROM fitness_get_trainers_ref()`); err != nil {
		return nil, mapError(err)
	}
	return refs, nil
}

func (r *scheduleRepository) Rooms() ([]models.RoomRef, error) {
	refs := []models.RoomRef{}
	if err := r.db.Select(&refs, `SELECT id, room_name FROM fitness_get_rooms_ref()`); err != nil {
		return nil, mapError(err)
	}
	return refs, nil
}

func (r *scheduleRepository) Activities() ([]models.ActivityRef, error) {
	refs := []models.ActivityRef{}
	if err := r.db.Select(&refs, `SELECT id, activity_name, difficulty_level FROM fitness_get_activities_ref()`); err != nil {
		return nil, mapError(err)
	}
	return refs, nil
}
