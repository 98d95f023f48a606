package tui

import "testing"

func TestPromptRejectsAndReprompts(t *testing.T) {
	p := newPrompt("FPS", "30", "", "", intInRange(1, 240))

	action, _ := p.handle(keyMsg("abc"))
	if action != promptNone {
		t.Fatalf("typing = %v, want none", action)
	}

	action, _ = p.handle(keyMsg("enter"))
	if action != promptNone {
		t.Fatal("invalid value must not submit")
	}
	if p.errMsg == "" {
		t.Fatal("invalid value must set an inline error")
	}

	p.handle(keyMsg("ctrl+u"))
	p.handle(keyMsg("60"))
	action, _ = p.handle(keyMsg("enter"))
	if action != promptSubmit {
		t.Fatalf("valid value = %v, want submit", action)
	}
	if p.errMsg != "" {
		t.Fatalf("error not cleared on valid submit: %q", p.errMsg)
	}
	if p.value() != "60" {
		t.Fatalf("value = %q, want 60", p.value())
	}
}

func TestPromptOutOfRange(t *testing.T) {
	p := newPrompt("Volume", "15", "150", "", intInRange(0, 100))

	action, _ := p.handle(keyMsg("enter"))
	if action != promptNone || p.errMsg == "" {
		t.Fatalf("out-of-range submit: action=%v err=%q", action, p.errMsg)
	}
}

func TestPromptCancel(t *testing.T) {
	p := newPrompt("FPS", "30", "not even a number", "", intInRange(1, 240))

	action, _ := p.handle(keyMsg("esc"))
	if action != promptCancel {
		t.Fatalf("esc = %v, want cancel", action)
	}
}

func TestPromptTrimsWhitespace(t *testing.T) {
	p := newPrompt("FPS", "30", "  60  ", "", intInRange(1, 240))

	action, _ := p.handle(keyMsg("enter"))
	if action != promptSubmit {
		t.Fatalf("padded value = %v, want submit", action)
	}
	if p.value() != "60" {
		t.Fatalf("value = %q, want 60", p.value())
	}
}

func TestValidSource(t *testing.T) {
	valid := []string{"2317494988", "0", "./my-wallpaper", "~/walls/x", "/abs/path", "sub/dir"}
	for _, s := range valid {
		if err := validSource(s); err != nil {
			t.Errorf("validSource(%q) = %v, want nil", s, err)
		}
	}

	invalid := []string{"", "wallpaper", "123abc"}
	for _, s := range invalid {
		if err := validSource(s); err == nil {
			t.Errorf("validSource(%q) = nil, want error", s)
		}
	}
}
