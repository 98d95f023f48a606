package xrandr

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/HereLiesHugo/almamu-linux-wallpaperengine-helper/internal/domain"
)

const queryOutput = `Screen 0: minimum 320 x 200, current 4480 x 1440, maximum 16384 x 16384
eDP-1 connected primary 1920x1080+0+0 (normal left inverted right x axis y axis) 344mm x 194mm
   1920x1080     60.05*+  59.93
HDMI-1 connected 2560x1440+1920+0 (normal left inverted right x axis y axis) 597mm x 336mm
   2560x1440     59.95*+
DP-1 disconnected (normal left inverted right x axis y axis)
Virtual-1 connected (normal left inverted right x axis y axis) 0mm x 0mm
garbage line that parses to nothing
`

func fixedRunner(t *testing.T, outputs map[string]string, errs map[string]error) RunCommand {
	t.Helper()
	return func(_ context.Context, name string, args ...string) ([]byte, error) {
		key := name
		for _, a := range args {
			key += " " + a
		}
		if err, ok := errs[key]; ok {
			return nil, err
		}
		out, ok := outputs[key]
		if !ok {
			t.Fatalf("unexpected command %q", key)
		}
		return []byte(out), nil
	}
}

func TestListParsesConnectedOutputs(t *testing.T) {
	run := fixedRunner(t, map[string]string{
		"xrandr --query": queryOutput,
	}, nil)

	got, err := New(WithRunner(run), WithoutNames()).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []domain.DisplayInfo{
		{Connector: "eDP-1", Resolution: "1920x1080", Recognized: true},
		{Connector: "HDMI-1", Resolution: "2560x1440", Recognized: true},
		{Connector: "Virtual-1", Recognized: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestListResolvesMonitorNames(t *testing.T) {
	prop := `Screen 0: minimum 320 x 200, current 4480 x 1440, maximum 16384 x 16384
eDP-1 connected primary 1920x1080+0+0 (normal left inverted right x axis y axis) 344mm x 194mm
	Monitor name: Builtin Panel
	non-desktop: 0
HDMI-1 connected 2560x1440+1920+0 (normal left inverted right x axis y axis) 597mm x 336mm
	EDID:
		` + edidHexWithName(t, "DELL U2719D") + `
	non-desktop: 0
DP-1 disconnected (normal left inverted right x axis y axis)
	EDID:
		deadbeef
`
	run := fixedRunner(t, map[string]string{
		"xrandr --query": queryOutput,
		"xrandr --prop":  prop,
	}, nil)

	got, err := New(WithRunner(run)).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	byConnector := map[string]string{}
	for _, d := range got {
		byConnector[d.Connector] = d.Name
	}
	if byConnector["eDP-1"] != "Builtin Panel" {
		t.Errorf("eDP-1 name = %q, want %q", byConnector["eDP-1"], "Builtin Panel")
	}
	if byConnector["HDMI-1"] != "DELL U2719D" {
		t.Errorf("HDMI-1 name = %q, want %q", byConnector["HDMI-1"], "DELL U2719D")
	}
	if byConnector["Virtual-1"] != "" {
		t.Errorf("Virtual-1 name = %q, want empty", byConnector["Virtual-1"])
	}
}

func TestListPropFailureIsCosmetic(t *testing.T) {
	run := fixedRunner(t,
		map[string]string{"xrandr --query": queryOutput},
		map[string]error{"xrandr --prop": errors.New("exit status 1")},
	)

	got, err := New(WithRunner(run)).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d displays, want 3", len(got))
	}
	for _, d := range got {
		if d.Name != "" {
			t.Errorf("%s has name %q, want empty", d.Connector, d.Name)
		}
	}
}

func TestListQueryFailure(t *testing.T) {
	run := fixedRunner(t, nil, map[string]error{
		"xrandr --query": errors.New("exec: \"xrandr\": executable file not found in $PATH"),
	})

	_, err := New(WithRunner(run)).List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !domain.IsKind(err, domain.KindDetection) {
		t.Fatalf("expected KindDetection, got %v", err)
	}
}

func TestListNoConnectedOutputs(t *testing.T) {
	run := fixedRunner(t, map[string]string{
		"xrandr --query": "Screen 0: minimum 320 x 200\nDP-1 disconnected (normal)\n",
	}, nil)

	got, err := New(WithRunner(run)).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %+v, want empty", got)
	}
}

func TestParseQueryDeduplicates(t *testing.T) {
	out := "HDMI-1 connected 1920x1080+0+0\nHDMI-1 connected 1920x1080+0+0\n"
	got := parseQuery(out)
	if len(got) != 1 {
		t.Fatalf("got %d entries, want 1", len(got))
	}
}
