package fs

import (
	"testing"

	"github.com/spf13/afero"
)

func TestWriteFileAtomic(t *testing.T) {
	fsys := afero.NewMemMapFs()

	if err := WriteFileAtomic(fsys, "sub/dir/file.txt", []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	data, err := afero.ReadFile(fsys, "sub/dir/file.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("content = %q, want %q", data, "hello\n")
	}

	// No temp file may survive a successful write
	if exists, _ := afero.Exists(fsys, "sub/dir/file.txt.tmp"); exists {
		t.Error("temp file left behind after rename")
	}
}

func TestWriteFileAtomicOverwrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := WriteFileAtomic(fsys, "file.txt", []byte("old"), 0o644); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteFileAtomic(fsys, "file.txt", []byte("new"), 0o644); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	data, _ := afero.ReadFile(fsys, "file.txt")
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}
