package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultProfile(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if p.FullName() != "Karan Darade" {
		t.Errorf("expected full name Karan Darade, got %q", p.FullName())
	}
	if len(p.Skills) != 14 {
		t.Errorf("expected 14 skills, got %d", len(p.Skills))
	}
	if len(p.Projects) != 6 {
		t.Errorf("expected 6 projects, got %d", len(p.Projects))
	}
	if p.GitHub == "" || p.LinkedIn == "" || p.Email == "" {
		t.Error("expected social links and email in the built-in profile")
	}

	want := Project{
		Title:       "E-Commerce Platform",
		Description: "Full-stack online store with payment integration and admin dashboard",
		Tech:        []string{"React", "Node.js", "MongoDB", "Stripe"},
		Color:       "orange-400 red-500",
		Link:        "#",
	}
	if diff := cmp.Diff(want, p.Projects[0]); diff != "" {
		t.Errorf("first project mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yml")
	data := `first_name: Ada
last_name: Lovelace
email: ada@example.com
skills:
  - {name: Go, icon: code}
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Profile{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Skills:    []Skill{{Name: "Go", Icon: "code"}},
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.FirstName != "Karan" {
		t.Errorf("expected built-in profile, got %q", p.FirstName)
	}
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"missing first name": "email: a@b.c\n",
		"missing email":      "first_name: Ada\n",
		"unknown key":        "first_name: Ada\nemail: a@b.c\nfavourite_colour: blue\n",
		"unnamed skill":      "first_name: Ada\nemail: a@b.c\nskills:\n  - {icon: code}\n",
		"untitled project":   "first_name: Ada\nemail: a@b.c\nprojects:\n  - {link: '#'}\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(src)); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing profile file")
	}
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("I specialize in the **MERN stack**.")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(out, "<strong>MERN stack</strong>") {
		t.Errorf("expected bold markup, got %q", out)
	}

	out, err = Markdown("<script>alert(1)</script>")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw html should be dropped, got %q", out)
	}
}

func TestInlineMarkdown(t *testing.T) {
	out, err := InlineMarkdown("Real-time *weather* tracking")
	if err != nil {
		t.Fatalf("InlineMarkdown: %v", err)
	}
	if out != "Real-time <em>weather</em> tracking" {
		t.Errorf("got %q", out)
	}
}

func TestNavLinks(t *testing.T) {
	var names []string
	for _, l := range NavLinks {
		names = append(names, l.Name)
	}
	want := []string{"Home", "About", "Skills", "Projects", "Contact"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("nav links mismatch (-want +got):\n%s", diff)
	}
	if NavLinks[1].Href() != "#about" {
		t.Errorf("expected #about, got %q", NavLinks[1].Href())
	}
}
