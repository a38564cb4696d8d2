package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gorm.io/gorm"

	"task-manager/internal/config"
	"task-manager/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewDB(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func uintPtr(v uint) *uint { return &v }

func TestNewDB_CreatesParentDir(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "dir", "tasks.db")

	db, err := NewDB(config.DatabaseConfig{Driver: config.DriverSQLite, DSN: dsn})
	if err != nil {
		t.Fatalf("NewDB returned error: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if _, err := os.Stat(filepath.Dir(dsn)); err != nil {
		t.Fatalf("expected parent dir to exist: %v", err)
	}
	if err := Ping(context.Background(), db); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
}

func TestNewDB_RejectsUnknownDriver(t *testing.T) {
	if _, err := NewDB(config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestWithForeignKeys(t *testing.T) {
	tests := map[string]string{
		"tasks.db":                   "tasks.db?_foreign_keys=on",
		"file:tasks.db?cache=shared": "file:tasks.db?cache=shared&_foreign_keys=on",
		"tasks.db?_foreign_keys=off": "tasks.db?_foreign_keys=off",
		"tasks.db?_fk=1":             "tasks.db?_fk=1",
	}
	for in, want := range tests {
		if got := withForeignKeys(in); got != want {
			t.Fatalf("withForeignKeys(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeMySQLDSN_ForcesParseTime(t *testing.T) {
	dsn, err := normalizeMySQLDSN("root:1234@tcp(localhost:3306)/task_manager_db")
	if err != nil {
		t.Fatalf("normalizeMySQLDSN returned error: %v", err)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("expected parseTime=true in %q", dsn)
	}
	if !strings.Contains(dsn, "/task_manager_db") {
		t.Fatalf("expected database name preserved in %q", dsn)
	}

	if _, err := normalizeMySQLDSN("not a dsn"); err == nil {
		t.Fatal("expected error for malformed dsn")
	}
}

func TestUserRepository_UniqueUsernameAndEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	if err := repo.Create(ctx, &model.User{Username: "alice", Email: "alice@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := repo.Create(ctx, &model.User{Username: "alice", Email: "other@example.com", Password: "pw"}); err == nil {
		t.Fatal("expected duplicate username to fail")
	}
	if err := repo.Create(ctx, &model.User{Username: "bob", Email: "alice@example.com", Password: "pw"}); err == nil {
		t.Fatal("expected duplicate email to fail")
	}

	users, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &model.User{Username: "carol", Email: "carol@example.com", Password: "pw"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	found, err := repo.FindByUsername(ctx, "carol")
	if err != nil {
		t.Fatalf("FindByUsername returned error: %v", err)
	}
	if found.ID != user.ID || found.Email != "carol@example.com" {
		t.Fatalf("unexpected user %+v", found)
	}

	if _, err := repo.FindByUsername(ctx, "nobody"); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserRepository_DeleteCascadesTasks(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)

	user := &model.User{Username: "dave", Email: "dave@example.com", Password: "pw"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("Create user: %v", err)
	}
	other := &model.Task{Title: "unowned", Description: "d"}
	for _, task := range []*model.Task{
		{Title: "one", Description: "d", UserID: &user.ID},
		{Title: "two", Description: "d", UserID: &user.ID},
		other,
	} {
		if err := tasks.Create(ctx, task); err != nil {
			t.Fatalf("Create task: %v", err)
		}
	}

	if err := users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	remaining, err := tasks.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != other.ID {
		t.Fatalf("expected only the unowned task to remain, got %+v", remaining)
	}
}

func TestProjectRepository_DeleteUnassignsTasks(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	projects := NewProjectRepository(db)
	tasks := NewTaskRepository(db)

	project := &model.Project{Name: "Alpha"}
	if err := projects.Create(ctx, project); err != nil {
		t.Fatalf("Create project: %v", err)
	}
	task := &model.Task{Title: "T1", Description: "d", ProjectID: &project.ID}
	if err := tasks.Create(ctx, task); err != nil {
		t.Fatalf("Create task: %v", err)
	}

	if err := projects.Delete(ctx, project.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := projects.GetByID(ctx, project.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected project to be gone, got %v", err)
	}
	saved, err := tasks.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if saved.ProjectID != nil {
		t.Fatalf("expected task to be unassigned, got project %d", *saved.ProjectID)
	}
}

func TestTaskRepository_ProjectScopedQueries(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	projects := NewProjectRepository(db)
	tasks := NewTaskRepository(db)

	alpha := &model.Project{Name: "Alpha"}
	beta := &model.Project{Name: "Beta"}
	for _, p := range []*model.Project{alpha, beta} {
		if err := projects.Create(ctx, p); err != nil {
			t.Fatalf("Create project: %v", err)
		}
	}

	a1 := &model.Task{Title: "a1", Description: "d", ProjectID: &alpha.ID}
	a2 := &model.Task{Title: "a2", Description: "d", ProjectID: &alpha.ID}
	b1 := &model.Task{Title: "b1", Description: "d", ProjectID: &beta.ID}
	loose := &model.Task{Title: "loose", Description: "d"}
	for _, task := range []*model.Task{a1, a2, b1, loose} {
		if err := tasks.Create(ctx, task); err != nil {
			t.Fatalf("Create task: %v", err)
		}
	}

	list, err := tasks.ListByProject(ctx, alpha.ID)
	if err != nil {
		t.Fatalf("ListByProject returned error: %v", err)
	}
	if len(list) != 2 || list[0].ID != a1.ID || list[1].ID != a2.ID {
		t.Fatalf("expected alpha tasks only, got %+v", list)
	}

	if _, err := tasks.FindInProject(ctx, alpha.ID, b1.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected task outside project to be missing, got %v", err)
	}
	found, err := tasks.FindInProject(ctx, beta.ID, b1.ID)
	if err != nil {
		t.Fatalf("FindInProject returned error: %v", err)
	}
	if found.Title != "b1" {
		t.Fatalf("expected b1, got %q", found.Title)
	}
}

func TestTaskRepository_DefaultsAndCompletion(t *testing.T) {
	ctx := context.Background()
	tasks := NewTaskRepository(newTestDB(t))

	task := &model.Task{Title: "write docs", Description: "d"}
	if err := tasks.Create(ctx, task); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	saved, err := tasks.FindByTitle(ctx, "write docs")
	if err != nil {
		t.Fatalf("FindByTitle returned error: %v", err)
	}
	if saved.Completed {
		t.Fatal("expected new task to be incomplete")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	if err := tasks.SetCompleted(ctx, saved, true); err != nil {
		t.Fatalf("SetCompleted returned error: %v", err)
	}
	reloaded, err := tasks.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if !reloaded.Completed {
		t.Fatal("expected task to be completed")
	}
}

func TestTaskRepository_RejectsUnknownUser(t *testing.T) {
	ctx := context.Background()
	tasks := NewTaskRepository(newTestDB(t))

	if err := tasks.Create(ctx, &model.Task{Title: "orphan", Description: "d", UserID: uintPtr(999)}); err == nil {
		t.Fatal("expected foreign key violation for unknown user")
	}
}
