package hyprctl

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
)

func runnerReturning(out string, err error) RunCommand {
	return func(context.Context, string, ...string) ([]byte, error) {
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	}
}

func TestListDecodesMonitors(t *testing.T) {
	out := `[
  {"name": "DP-1", "description": "Dell Inc. DELL U2719D", "width": 2560, "height": 1440, "disabled": false},
  {"name": "eDP-1", "description": "BOE 0x0791", "width": 1920, "height": 1080, "disabled": false},
  {"name": "HDMI-A-1", "description": "", "width": 0, "height": 0, "disabled": true}
]`

	got, err := New(WithRunner(runnerReturning(out, nil))).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []domain.DisplayInfo{
		{Connector: "DP-1", Name: "Dell Inc. DELL U2719D", Resolution: "2560x1440", Recognized: true},
		{Connector: "eDP-1", Name: "BOE 0x0791", Resolution: "1920x1080", Recognized: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestListUnrecognizedConnector(t *testing.T) {
	out := `[{"name": "HDMI-A-1", "description": "LG TV", "width": 3840, "height": 2160, "disabled": false}]`

	got, err := New(WithRunner(runnerReturning(out, nil))).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].Recognized {
		t.Fatalf("got %+v, want one unrecognized display", got)
	}
}

func TestListCommandFailure(t *testing.T) {
	_, err := New(WithRunner(runnerReturning("", errors.New("hyprctl not running")))).List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindDetection) {
		t.Fatalf("expected KindDetection, got %v", err)
	}
}

func TestListInvalidJSON(t *testing.T) {
	_, err := New(WithRunner(runnerReturning("not json", nil))).List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindDetection) {
		t.Fatalf("expected KindDetection, got %v", err)
	}
}

func TestListEmpty(t *testing.T) {
	got, err := New(WithRunner(runnerReturning("[]", nil))).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %+v, want empty", got)
	}
}
