package repository

import (
	"context"

	"github.com/daypulse/daypulse/internal/database"
	"github.com/daypulse/daypulse/internal/models"
)

type ScheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(ctx context.Context, task *models.ScheduleTask) error {
	subTasks := task.SubTasks
	if subTasks == nil {
		subTasks = []models.SubTask{}
	}
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO schedule_tasks (user_id, day_key, time_of_day, task, completed, priority, has_reminder, alarm_sound, notes, sub_tasks)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING task_id, created_at`,
		task.UserID, task.DayKey, task.TimeOfDay, task.Task, task.Completed, task.Priority,
		task.HasReminder, task.AlarmSound, task.Notes, subTasks,
	).Scan(&task.TaskID, &task.CreatedAt)
}

// ListForDay returns the user's schedule for one day key, ordered by time of
// day. A day with no rows yields an empty slice, never an error.
func (r *ScheduleRepository) ListForDay(ctx context.Context, userID int64, dayKey string) ([]*models.ScheduleTask, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT task_id, user_id, day_key, time_of_day, task, completed, priority, has_reminder, alarm_sound, notes, sub_tasks, created_at
		 FROM schedule_tasks WHERE user_id = $1 AND day_key = $2
		 ORDER BY time_of_day, task_id`,
		userID, dayKey,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.ScheduleTask
	for rows.Next() {
		task := &models.ScheduleTask{}
		if err := rows.Scan(&task.TaskID, &task.UserID, &task.DayKey, &task.TimeOfDay, &task.Task,
			&task.Completed, &task.Priority, &task.HasReminder, &task.AlarmSound, &task.Notes,
			&task.SubTasks, &task.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// EnsureDay seeds the default day template for a day key that has no stored
// schedule yet, then returns the day's tasks.
func (r *ScheduleRepository) EnsureDay(ctx context.Context, userID int64, dayKey string) ([]*models.ScheduleTask, error) {
	tasks, err := r.ListForDay(ctx, userID, dayKey)
	if err != nil {
		return nil, err
	}
	if len(tasks) > 0 {
		return tasks, nil
	}

	for _, tpl := range models.DefaultDayTemplate {
		task := &models.ScheduleTask{
			UserID:    userID,
			DayKey:    dayKey,
			TimeOfDay: tpl.TimeOfDay,
			Task:      tpl.Task,
			Priority:  tpl.Priority,
		}
		if err := r.Create(ctx, task); err != nil {
			return nil, err
		}
	}
	return r.ListForDay(ctx, userID, dayKey)
}

func (r *ScheduleRepository) GetByID(ctx context.Context, taskID int64, userID int64) (*models.ScheduleTask, error) {
	task := &models.ScheduleTask{}
	err := r.db.Pool.QueryRow(ctx,
		`SELECT task_id, user_id, day_key, time_of_day, task, completed, priority, has_reminder, alarm_sound, notes, sub_tasks, created_at
		 FROM schedule_tasks WHERE task_id = $1 AND user_id = $2`,
		taskID, userID,
	).Scan(&task.TaskID, &task.UserID, &task.DayKey, &task.TimeOfDay, &task.Task,
		&task.Completed, &task.Priority, &task.HasReminder, &task.AlarmSound, &task.Notes,
		&task.SubTasks, &task.CreatedAt)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *ScheduleRepository) SetCompleted(ctx context.Context, taskID int64, userID int64, completed bool) error {
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE schedule_tasks SET completed = $1 WHERE task_id = $2 AND user_id = $3`,
		completed, taskID, userID,
	)
	return err
}

func (r *ScheduleRepository) Delete(ctx context.Context, taskID int64, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM schedule_tasks WHERE task_id = $1 AND user_id = $2`,
		taskID, userID,
	)
	return err
}

// ClearDay removes a day's schedule so the next EnsureDay reseeds the
// template.
func (r *ScheduleRepository) ClearDay(ctx context.Context, userID int64, dayKey string) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM schedule_tasks WHERE user_id = $1 AND day_key = $2`,
		userID, dayKey,
	)
	return err
}
