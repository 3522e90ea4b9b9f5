package services

import (
	"context"
	"testing"
	"time"

	"github.com/devfolio/backend/internal/models"
)

func newTestProjectService(t *testing.T) *LocalProjectService {
	t.Helper()
	svc, err := NewLocalProjectService(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalProjectService: %v", err)
	}
	return svc
}

func createProject(t *testing.T, svc *LocalProjectService, title string, featured bool) *models.Project {
	t.Helper()
	p, err := svc.Create(context.Background(), &models.CreateProjectRequest{
		Title:    title,
		Desc:     "desc for " + title,
		Featured: featured,
	})
	if err != nil {
		t.Fatalf("Create(%s): %v", title, err)
	}
	// Creation timestamps must differ for ordering to be observable.
	time.Sleep(2 * time.Millisecond)
	return p
}

func TestProjectList_FeaturedFirst(t *testing.T) {
	ctx := context.Background()

	// Featured created first, then non-featured.
	svc := newTestProjectService(t)
	createProject(t, svc, "featured-early", true)
	createProject(t, svc, "plain-late", false)

	got, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got[0].Title != "featured-early" {
		t.Errorf("featured project should lead, got %q first", got[0].Title)
	}

	// Non-featured created first, then featured.
	svc = newTestProjectService(t)
	createProject(t, svc, "plain-early", false)
	createProject(t, svc, "featured-late", true)

	got, err = svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got[0].Title != "featured-late" {
		t.Errorf("featured project should lead regardless of creation order, got %q first", got[0].Title)
	}
}

func TestProjectList_NewestFirstWithinGroup(t *testing.T) {
	svc := newTestProjectService(t)
	createProject(t, svc, "first", false)
	createProject(t, svc, "second", false)
	createProject(t, svc, "third", false)

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"third", "second", "first"}
	for i, title := range want {
		if got[i].Title != title {
			t.Errorf("List()[%d] = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestProjectCreate_TechRoundTrip(t *testing.T) {
	svc := newTestProjectService(t)

	_, err := svc.Create(context.Background(), &models.CreateProjectRequest{
		Title: "Portfolio",
		Desc:  "Personal site",
		Tech:  []string{"React", "Node"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("List() returned %d projects, want 1", len(got))
	}
	tech := got[0].Tech
	if len(tech) != 2 || tech[0] != "React" || tech[1] != "Node" {
		t.Errorf("Tech = %v, want [React Node] in order", tech)
	}
}

func TestProjectUpdate_MergesAndTrims(t *testing.T) {
	svc := newTestProjectService(t)
	created := createProject(t, svc, "Portfolio", false)

	newType := "  Full Stack  "
	updated, err := svc.Update(context.Background(), created.ID.Hex(), &models.UpdateProjectRequest{
		Type: &newType,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Type != "Full Stack" {
		t.Errorf("Type = %q, want trimmed value", updated.Type)
	}
	if updated.Title != "Portfolio" {
		t.Errorf("Title changed unexpectedly: %q", updated.Title)
	}
}

func TestProjectUpdate_NotFound(t *testing.T) {
	svc := newTestProjectService(t)

	title := "x"
	_, err := svc.Update(context.Background(), "65f000000000000000000000", &models.UpdateProjectRequest{Title: &title})
	if err != ErrProjectNotFound {
		t.Errorf("Update() error = %v, want ErrProjectNotFound", err)
	}
}

func TestProjectDelete(t *testing.T) {
	svc := newTestProjectService(t)
	created := createProject(t, svc, "Portfolio", false)

	if err := svc.Delete(context.Background(), created.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID.Hex()); err != ErrProjectNotFound {
		t.Errorf("second Delete() error = %v, want ErrProjectNotFound", err)
	}

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("List() returned %d projects after delete, want 0", len(got))
	}
}

func TestProjectService_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	svc, err := NewLocalProjectService(dir)
	if err != nil {
		t.Fatalf("NewLocalProjectService: %v", err)
	}
	created, err := svc.Create(context.Background(), &models.CreateProjectRequest{
		Title: "Portfolio",
		Desc:  "Personal site",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	reopened, err := NewLocalProjectService(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ID != created.ID {
		t.Errorf("reopened store lost the project: %v", got)
	}
}
