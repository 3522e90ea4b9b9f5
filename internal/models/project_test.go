package models

import "testing"

func TestCreateProjectRequest_Validate_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		req   CreateProjectRequest
		field string
	}{
		{"missing title", CreateProjectRequest{Desc: "a site"}, "title"},
		{"whitespace title", CreateProjectRequest{Title: "   ", Desc: "a site"}, "title"},
		{"missing desc", CreateProjectRequest{Title: "Portfolio"}, "desc"},
		{"whitespace desc", CreateProjectRequest{Title: "Portfolio", Desc: "\t\n"}, "desc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if len(errs) == 0 {
				t.Fatal("Validate() should have returned errors")
			}
			if _, ok := errs[tt.field]; !ok {
				t.Errorf("Validate() missing error for field %q, got %v", tt.field, errs)
			}
		})
	}
}

func TestCreateProjectRequest_Validate_OK(t *testing.T) {
	req := CreateProjectRequest{Title: "Portfolio", Desc: "Personal site"}
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("Validate() unexpected errors: %v", errs)
	}
}

func TestCreateProjectRequest_ToProject_Defaults(t *testing.T) {
	req := CreateProjectRequest{Title: "Portfolio", Desc: "Personal site"}
	p := req.ToProject()

	if p.Type != "General" {
		t.Errorf("Type = %q, want General", p.Type)
	}
	if p.Tech == nil || len(p.Tech) != 0 {
		t.Errorf("Tech = %v, want empty slice", p.Tech)
	}
	if p.ID.IsZero() {
		t.Error("ID should be generated")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}
}

func TestCreateProjectRequest_ToProject_TrimsType(t *testing.T) {
	req := CreateProjectRequest{Title: "Portfolio", Desc: "Personal site", Type: "  Full Stack  "}
	if p := req.ToProject(); p.Type != "Full Stack" {
		t.Errorf("Type = %q, want %q", p.Type, "Full Stack")
	}
}

func TestUpdateProjectRequest_Apply_MergesOnlySuppliedFields(t *testing.T) {
	create := CreateProjectRequest{
		Title:    "Portfolio",
		Desc:     "Personal site",
		Tech:     []string{"React", "Node"},
		Featured: true,
		Type:     "Web",
	}
	p := create.ToProject()

	title := "Portfolio v2"
	projectType := "  Full Stack "
	req := UpdateProjectRequest{Title: &title, Type: &projectType}
	req.Apply(p)

	if p.Title != "Portfolio v2" {
		t.Errorf("Title = %q, want Portfolio v2", p.Title)
	}
	if p.Type != "Full Stack" {
		t.Errorf("Type = %q, want trimmed Full Stack", p.Type)
	}
	if p.Desc != "Personal site" {
		t.Errorf("Desc changed unexpectedly: %q", p.Desc)
	}
	if !p.Featured {
		t.Error("Featured changed unexpectedly")
	}
	if len(p.Tech) != 2 || p.Tech[0] != "React" || p.Tech[1] != "Node" {
		t.Errorf("Tech changed unexpectedly: %v", p.Tech)
	}
}
