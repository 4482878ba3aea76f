package dispatcher_test

import (
	"context"
	"testing"

	"github.com/dshills/bindery/internal/dispatcher"
)

func TestRouterRegisterNamespace(t *testing.T) {
	router := dispatcher.NewRouter()
	router.RegisterNamespace("view3d", nop)

	if router.Route("view3d.select") == nil {
		t.Error("expected view3d.select to route")
	}
	if router.Route("mesh.bevel") != nil {
		t.Error("expected mesh.bevel not to route")
	}
}

func TestRouterUnregisterNamespace(t *testing.T) {
	router := dispatcher.NewRouter()
	router.RegisterNamespace("view3d", nop)
	router.UnregisterNamespace("view3d")

	if router.Route("view3d.select") != nil {
		t.Error("expected namespace to be removed")
	}
	if len(router.Namespaces()) != 0 {
		t.Errorf("Namespaces() = %v, want none", router.Namespaces())
	}
}

func TestRouterFallback(t *testing.T) {
	router := dispatcher.NewRouter()

	called := ""
	router.SetFallback(func(_ context.Context, inv dispatcher.Invocation) error {
		called = inv.Command
		return nil
	})

	h := router.Route("CONFIRM")
	if h == nil {
		t.Fatal("expected fallback for command without namespace")
	}
	if err := h(context.Background(), dispatcher.Invocation{Command: "CONFIRM"}); err != nil {
		t.Fatalf("fallback returned %v", err)
	}
	if called != "CONFIRM" {
		t.Errorf("fallback saw %q, want CONFIRM", called)
	}
}

func TestRouterNamespaces(t *testing.T) {
	router := dispatcher.NewRouter()
	router.RegisterNamespace("wm", nop)
	router.RegisterNamespace("object", nop)

	got := router.Namespaces()
	if len(got) != 2 || got[0] != "object" || got[1] != "wm" {
		t.Errorf("Namespaces() = %v, want [object wm]", got)
	}
}

func TestNamespace(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"view3d.select", "view3d"},
		{"wm.call_menu_pie", "wm"},
		{"text.new", "text"},
		{"CANCEL", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			if got := dispatcher.Namespace(tt.command); got != tt.want {
				t.Errorf("Namespace(%q) = %q, want %q", tt.command, got, tt.want)
			}
		})
	}
}
