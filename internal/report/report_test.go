package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/indaco/update-plist/internal/core"
	"github.com/indaco/update-plist/internal/updater"
)

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("invalid JSON %q: %v", data, err)
	}
	return obj
}

func TestMarshal_Success(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.SetFile("/Info.plist", []byte(`<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0"><dict><key>CFBundleShortVersionString</key><string>1.0</string></dict></plist>`))

	var buf bytes.Buffer
	u := updater.New(fsys, updater.WithReporter(NewJSONReporter(&buf)))
	if res := u.UpdateVersion(context.Background(), "/Info.plist", "2.3.1", "7"); !res.OK() {
		t.Fatalf("update failed: %v", res.Err)
	}

	obj := decode(t, bytes.TrimSpace(buf.Bytes()))
	want := map[string]any{
		"ok":       true,
		"path":     "/Info.plist",
		"version":  "2.3.1",
		"build":    "7",
		"previous": "1.0",
		"format":   "xml",
		"dry_run":  false,
	}
	for k, v := range want {
		if obj[k] != v {
			t.Errorf("%s = %#v, want %#v", k, obj[k], v)
		}
	}
	if _, ok := obj["error"]; ok {
		t.Error("successful report must not carry an error field")
	}
}

func TestMarshal_Failure(t *testing.T) {
	fsys := core.NewMockFileSystem()
	fsys.ReadErr = errors.New("permission denied")

	var buf bytes.Buffer
	u := updater.New(fsys, updater.WithReporter(NewJSONReporter(&buf)))
	res := u.UpdateVersion(context.Background(), "/Info.plist", "2.0", "")
	if res.OK() {
		t.Fatal("expected failure")
	}

	obj := decode(t, bytes.TrimSpace(buf.Bytes()))
	if obj["ok"] != false {
		t.Errorf("ok = %#v, want false", obj["ok"])
	}
	msg, _ := obj["error"].(string)
	if msg == "" || !bytes.Contains([]byte(msg), []byte("permission denied")) {
		t.Errorf("error = %q", msg)
	}
	if _, ok := obj["format"]; ok {
		t.Error("format should be omitted when nothing was loaded")
	}
}

func TestMarshal_EscapesPathCharacters(t *testing.T) {
	data, err := Marshal(updater.Result{Path: `/tmp/My "App"/Info.plist`, Version: "1.0"})
	if err != nil {
		t.Fatal(err)
	}

	obj := decode(t, data)
	if obj["path"] != `/tmp/My "App"/Info.plist` {
		t.Errorf("path = %#v", obj["path"])
	}
}
