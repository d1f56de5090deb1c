package store

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"organizer/internal/domain"
	"organizer/internal/errors"

	"github.com/rs/zerolog"
)

// KV is the persistence facility the snapshot is written to.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Store owns the organization state. Every mutation rewrites the whole
// snapshot under the store's key. When that write fails the in-memory change
// is kept and the error is returned, so the next successful write catches up.
type Store struct {
	mu           sync.Mutex
	kv           KV
	key          string
	state        domain.State
	newID        func() string
	loc          *time.Location
	logger       zerolog.Logger
	writeTimeout time.Duration
}

// Open loads the snapshot stored under key. An absent or unparseable snapshot
// yields the empty state, and entries of the wrong shape are left out. In both
// cases the stored text is first copied to the backup key so the next write
// cannot lose it. Only a failing read is returned as an error.
func Open(ctx context.Context, kv KV, key string, opts ...Option) (*Store, error) {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{
		kv:     kv,
		key:    key,
		newID:  newUUID,
		loc:    time.Local,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, toStorageError("read snapshot", err)
	}

	s.state = domain.NewState()
	if !ok {
		s.logger.Debug().Str("key", key).Msg("no stored snapshot, starting empty")
		return s, nil
	}

	state, skipped, err := Decode([]byte(raw), s.loc)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", key).Msg("discarding unreadable snapshot")
		s.backup(ctx, raw)
		return s, nil
	}
	if len(skipped) > 0 {
		s.logger.Warn().Strs("entries", skipped).Str("key", key).Msg("skipping malformed snapshot entries")
		s.backup(ctx, raw)
	}
	s.state = state
	return s, nil
}

// BackupKey returns the key a snapshot that did not load cleanly is copied to.
func (s *Store) BackupKey() string {
	return s.key + BackupSuffix
}

func (s *Store) backup(ctx context.Context, raw string) {
	if err := s.kv.Set(ctx, s.BackupKey(), raw); err != nil {
		s.logger.Error().Err(err).Str("key", s.BackupKey()).Msg("snapshot backup failed")
		return
	}
	s.logger.Info().Str("key", s.BackupKey()).Msg("original snapshot backed up")
}

// Key returns the key the snapshot is stored under.
func (s *Store) Key() string {
	return s.key
}

// Location returns the time zone dates are interpreted in.
func (s *Store) Location() *time.Location {
	return s.loc
}

// State returns a deep copy of the current state.
func (s *Store) State() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Tasks returns a copy of one list.
func (s *Store) Tasks(list domain.ListName) ([]domain.Task, error) {
	if err := checkList(list); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.state.Lists[list]
	out := make([]domain.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out, nil
}

// WorkoutPlan returns a copy of the plan, or nil when none is set.
func (s *Store) WorkoutPlan() *domain.WorkoutPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.WorkoutPlan.Clone()
}

// AddTask appends a new task built from proto and returns its id.
func (s *Store) AddTask(ctx context.Context, list domain.ListName, proto domain.TaskPatch) (string, error) {
	if err := checkList(list); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.uniqueID(list)
	task := domain.Task{ID: id}
	proto.Apply(&task)
	s.state.Lists[list] = append(s.state.Lists[list], task)

	s.logger.Debug().Str("list", list.String()).Str("id", id).Msg("task added")
	return id, s.persist(ctx)
}

// UpdateTask merges patch into the task with id. A missing task is not an
// error and nothing is written.
func (s *Store) UpdateTask(ctx context.Context, list domain.ListName, id string, patch domain.TaskPatch) (bool, error) {
	if err := checkList(list); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.FindTask(list, id)
	if i < 0 {
		return false, nil
	}
	patch.Apply(&s.state.Lists[list][i])
	return true, s.persist(ctx)
}

// RemoveTask drops the task with id. The snapshot is written even when no
// task matched.
func (s *Store) RemoveTask(ctx context.Context, list domain.ListName, id string) error {
	if err := checkList(list); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := s.state.Lists[list]
	kept := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.state.Lists[list] = kept
	return s.persist(ctx)
}

// ToggleTaskCompletion flips the completed flag of the task with id.
func (s *Store) ToggleTaskCompletion(ctx context.Context, list domain.ListName, id string) (bool, error) {
	if err := checkList(list); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.state.FindTask(list, id)
	if i < 0 {
		return false, nil
	}
	task := &s.state.Lists[list][i]
	task.Completed = !task.Completed
	return true, s.persist(ctx)
}

// ClearList empties a list.
func (s *Store) ClearList(ctx context.Context, list domain.ListName) error {
	if err := checkList(list); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Lists[list] = []domain.Task{}
	return s.persist(ctx)
}

// SetWorkoutPlan replaces the plan. The schedule is normalized to the seven
// weekday keys and an id is assigned when plan has none.
func (s *Store) SetWorkoutPlan(ctx context.Context, plan domain.WorkoutPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &domain.WorkoutPlan{
		ID:       plan.ID,
		Name:     plan.Name,
		Schedule: domain.NormalizeSchedule(plan.Schedule),
	}
	if stored.ID == "" {
		stored.ID = s.newID()
	}
	s.state.WorkoutPlan = stored
	return s.persist(ctx)
}

// ClearWorkoutPlan removes the plan. The completion record is kept.
func (s *Store) ClearWorkoutPlan(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.WorkoutPlan = nil
	return s.persist(ctx)
}

// ToggleWorkoutCompletion flips the completion recorded for day's date and
// returns the new value. An absent entry counts as false.
func (s *Store) ToggleWorkoutCompletion(ctx context.Context, day time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.DateKey(day)
	done := !s.state.CompletedWorkouts[key]
	s.state.CompletedWorkouts[key] = done
	return done, s.persist(ctx)
}

func (s *Store) uniqueID(list domain.ListName) string {
	for {
		id := s.newID()
		if s.state.FindTask(list, id) < 0 {
			return id
		}
	}
}

// persist must be called with mu held.
func (s *Store) persist(ctx context.Context) error {
	data, err := Encode(s.state)
	if err != nil {
		return errors.NewStorageError("encode snapshot", err)
	}

	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return errors.NewTimeoutError("write snapshot", s.writeTimeout.String())
		}
		s.logger.Error().Err(err).Str("key", s.key).Msg("snapshot write failed")
		return toStorageError("write snapshot", err)
	}

	s.logger.Debug().Str("key", s.key).Int("bytes", len(data)).Msg("snapshot written")
	return nil
}

func checkList(list domain.ListName) error {
	if !list.IsValid() {
		return errors.NewInvalidInputError("list", list.String(), "unknown list")
	}
	return nil
}

func toStorageError(operation string, err error) error {
	if appErr, ok := errors.AsAppError(err); ok && appErr.Type == errors.ErrorTypeStorage {
		return appErr
	}
	return errors.NewStorageError(operation, err)
}
