package models

import "testing"

func TestCreateAchievementRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateAchievementRequest
		wantErr string // field expected in the error map, "" for valid
	}{
		{"valid minimal", CreateAchievementRequest{Title: "React Certificate"}, ""},
		{"valid with category", CreateAchievementRequest{Title: "GSoC", Category: "Open Source"}, ""},
		{"missing title", CreateAchievementRequest{Issuer: "Coursera"}, "title"},
		{"whitespace title", CreateAchievementRequest{Title: "  "}, "title"},
		{"bad category", CreateAchievementRequest{Title: "Cert", Category: "Diploma"}, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Errorf("Validate() unexpected errors: %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantErr]; !ok {
				t.Errorf("Validate() missing error for %q, got %v", tt.wantErr, errs)
			}
		})
	}
}

func TestCreateAchievementRequest_DefaultCategory(t *testing.T) {
	req := CreateAchievementRequest{Title: "React Certificate"}
	if a := req.ToAchievement(); a.Category != "Certification" {
		t.Errorf("Category = %q, want Certification", a.Category)
	}
}

func TestUpdateAchievementRequest_Validate_RejectsBadCategory(t *testing.T) {
	bad := "Diploma"
	req := UpdateAchievementRequest{Category: &bad}
	if errs := req.Validate(); len(errs) == 0 {
		t.Fatal("Validate() should reject category outside the enum")
	}

	good := "Hackathon"
	req = UpdateAchievementRequest{Category: &good}
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("Validate() unexpected errors: %v", errs)
	}
}

func TestIsValidAchievementCategory(t *testing.T) {
	for _, c := range AchievementCategories {
		if !IsValidAchievementCategory(c) {
			t.Errorf("IsValidAchievementCategory(%q) = false", c)
		}
	}
	if IsValidAchievementCategory("certification") {
		t.Error("category match should be case-sensitive")
	}
}
