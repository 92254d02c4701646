package registry

import (
	"testing"

	"github.com/vovakirdan/antidote-run/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }
func (s *stubGame) HUD() core.HUD { return core.HUD{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub-b", func() Game { return &stubGame{id: "zz-stub-b"} })
	Register("zz-stub-a", func() Game { return &stubGame{id: "zz-stub-a"} })

	if !Exists("zz-stub-a") {
		t.Fatal("expected zz-stub-a to exist")
	}
	if Exists("zz-missing") {
		t.Error("unexpected zz-missing")
	}

	g, err := Create("zz-stub-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub-b" {
		t.Errorf("ID = %q", g.ID())
	}

	if _, err := Create("zz-missing"); err == nil {
		t.Error("expected error for unknown game")
	}

	list := List()
	var ids []string
	for _, info := range list {
		if info.ID == "zz-stub-a" || info.ID == "zz-stub-b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz-stub-a" || ids[1] != "zz-stub-b" {
		t.Errorf("List not sorted or incomplete: %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}
