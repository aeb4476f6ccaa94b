package template

import (
	"os"
	"strings"
	"testing"
)

func TestGenerator_ServiceAgreement_Defaults(t *testing.T) {
	generator := NewGenerator(t.TempDir())

	content := generator.ServiceAgreement(nil)

	for _, want := range []string{
		"SERVICE AGREEMENT",
		"[CLIENT NAME]",
		"[PROVIDER NAME]",
		"Either party may terminate with 60 days written notice",
		"Total liability capped at 6 months of fees paid",
		"No automatic renewal without explicit consent",
		"Arbitration and Conciliation Act, 1996",
		"governed by the laws of India",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("service agreement missing %q", want)
		}
	}

	if strings.Contains(content, "{client}") {
		t.Error("unresolved placeholder left in output")
	}
}

func TestGenerator_ServiceAgreement_FieldOverrides(t *testing.T) {
	generator := NewGenerator(t.TempDir())

	content := generator.ServiceAgreement(map[string]string{
		"client":       "Acme Pvt Ltd",
		"jurisdiction": "Mumbai",
	})

	if !strings.Contains(content, "Acme Pvt Ltd") {
		t.Error("expected client override")
	}
	if !strings.Contains(content, "Courts in Mumbai shall have jurisdiction") {
		t.Error("expected jurisdiction override")
	}
	if strings.Contains(content, "[CLIENT NAME]") {
		t.Error("override should replace the default marker")
	}
}

func TestGenerator_MutualNDA(t *testing.T) {
	generator := NewGenerator(t.TempDir())

	content := generator.MutualNDA(map[string]string{"purpose": "evaluating a joint venture"})

	if !strings.Contains(content, "NON-DISCLOSURE AGREEMENT") {
		t.Error("expected NDA title")
	}
	if !strings.Contains(content, "This is a MUTUAL NDA") {
		t.Error("expected mutual obligation statement")
	}
	if !strings.Contains(content, "evaluating a joint venture") {
		t.Error("expected purpose override")
	}
}

func TestGenerator_FreelancerAgreement(t *testing.T) {
	generator := NewGenerator(t.TempDir())

	content := generator.FreelancerAgreement(nil)

	if !strings.Contains(content, "FREELANCER AGREEMENT") {
		t.Error("expected title")
	}
	if !strings.Contains(content, "Freelancer retains rights to general tools") {
		t.Error("expected IP carve-out for freelancer tools")
	}
	if !strings.Contains(content, "Liability capped at total fees paid") {
		t.Error("expected liability cap")
	}
}

func TestGenerator_Save(t *testing.T) {
	dir := t.TempDir()
	generator := NewGenerator(dir)

	path, err := generator.Save("Service Agreement", "content")
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if !strings.HasSuffix(path, "service_agreement_template.txt") {
		t.Errorf("unexpected file name: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "content" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestTemplateGuidelines(t *testing.T) {
	service := TemplateGuidelines("Service Agreement")
	if len(service.FairTerms) == 0 || len(service.Avoid) == 0 {
		t.Error("expected populated guidelines for Service Agreement")
	}

	unknown := TemplateGuidelines("Partnership Deed")
	if len(unknown.FairTerms) != 3 {
		t.Errorf("expected generic guidelines for unknown type, got %v", unknown.FairTerms)
	}
}

func TestGenerator_ListTemplates(t *testing.T) {
	generator := NewGenerator(t.TempDir())

	templates := generator.ListTemplates()
	if len(templates) != 10 {
		t.Errorf("expected 10 template types, got %d", len(templates))
	}
}
