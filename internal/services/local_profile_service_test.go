package services

import (
	"context"
	"testing"

	"github.com/devfolio/backend/internal/models"
)

func newTestProfileService(t *testing.T) *LocalProfileService {
	t.Helper()
	svc, err := NewLocalProfileService(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalProfileService: %v", err)
	}
	return svc
}

func TestProfileGet_SingletonInvariant(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()

	first, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("first Get: %v", err)
	}
	second, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("two reads created different documents: %s vs %s", first.ID.Hex(), second.ID.Hex())
	}
}

func TestProfileGet_Defaults(t *testing.T) {
	svc := newTestProfileService(t)

	prof, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if prof.Name == "" || prof.Title == "" {
		t.Error("default profile should have name and title")
	}
	if !prof.ShowBadge {
		t.Error("default profile should show the badge")
	}
	if len(prof.Services) != 3 {
		t.Errorf("default profile has %d services, want 3", len(prof.Services))
	}
}

func TestProfileUpdate_MergesOnlySuppliedFields(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()

	original, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	intro := "Hello there"
	projects := "25+"
	updated, err := svc.Update(ctx, &models.UpdateProfileRequest{
		Intro: &intro,
		Stats: &models.ProfileStatsPatch{Projects: &projects},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Intro != "Hello there" {
		t.Errorf("Intro = %q", updated.Intro)
	}
	if updated.Stats.Projects != "25+" {
		t.Errorf("Stats.Projects = %q", updated.Stats.Projects)
	}
	// Untouched fields survive, including the other stats sub-fields.
	if updated.Name != original.Name {
		t.Errorf("Name changed unexpectedly: %q", updated.Name)
	}
	if updated.Stats.Internships != original.Stats.Internships {
		t.Errorf("Stats.Internships changed unexpectedly: %q", updated.Stats.Internships)
	}
	if updated.ID != original.ID {
		t.Error("update must not replace the singleton document")
	}
}

func TestProfileSetImageAndResume(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()

	prof, err := svc.SetImage(ctx, "/uploads/images/123-456.png")
	if err != nil {
		t.Fatalf("SetImage: %v", err)
	}
	if prof.ProfileImage != "/uploads/images/123-456.png" {
		t.Errorf("ProfileImage = %q", prof.ProfileImage)
	}

	prof, err = svc.SetResume(ctx, "/uploads/resume/123-457.pdf")
	if err != nil {
		t.Fatalf("SetResume: %v", err)
	}
	if prof.ResumePdf != "/uploads/resume/123-457.pdf" {
		t.Errorf("ResumePdf = %q", prof.ResumePdf)
	}
	if prof.ProfileImage != "/uploads/images/123-456.png" {
		t.Error("setting the resume must not clear the image")
	}
}

func TestProfile_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	svc, err := NewLocalProfileService(dir)
	if err != nil {
		t.Fatalf("NewLocalProfileService: %v", err)
	}
	name := "New Name"
	if _, err := svc.Update(ctx, &models.UpdateProfileRequest{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reopened, err := NewLocalProfileService(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	prof, err := reopened.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if prof.Name != "New Name" {
		t.Errorf("reopened profile Name = %q, want New Name", prof.Name)
	}
}
