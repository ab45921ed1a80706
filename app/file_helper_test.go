package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ludo-technologies/solidscan/domain"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("public class A { }\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestCollectCSharpFilesRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Program.cs"))
	touch(t, filepath.Join(dir, "src", "Order.cs"))
	touch(t, filepath.Join(dir, "src", "notes.txt"))
	touch(t, filepath.Join(dir, "bin", "Generated.cs"))

	helper := NewFileHelper()
	files, err := helper.CollectCSharpFiles([]string{dir}, true, nil, []string{"bin"})
	if err != nil {
		t.Fatalf("CollectCSharpFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) != ".cs" {
			t.Errorf("non-C# file collected: %s", f)
		}
		if filepath.Base(filepath.Dir(f)) == "bin" {
			t.Errorf("excluded directory traversed: %s", f)
		}
	}
}

func TestCollectCSharpFilesNonRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Top.cs"))
	touch(t, filepath.Join(dir, "nested", "Deep.cs"))

	helper := NewFileHelper()
	files, err := helper.CollectCSharpFiles([]string{dir}, false, nil, nil)
	if err != nil {
		t.Fatalf("CollectCSharpFiles failed: %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "Top.cs" {
		t.Errorf("non-recursive collection should stay at the top level: %v", files)
	}
}

func TestCollectCSharpFilesExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Order.cs"))
	touch(t, filepath.Join(dir, "Order.Designer.cs"))
	touch(t, filepath.Join(dir, "Grid.generated.cs"))

	helper := NewFileHelper()
	files, err := helper.CollectCSharpFiles([]string{dir}, true, nil,
		[]string{"*.Designer.cs", "*.generated.cs"})
	if err != nil {
		t.Fatalf("CollectCSharpFiles failed: %v", err)
	}

	if len(files) != 1 || filepath.Base(files[0]) != "Order.cs" {
		t.Errorf("generated files should be excluded: %v", files)
	}
}

func TestCollectCSharpFilesIncludePatterns(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "OrderService.cs"))
	touch(t, filepath.Join(dir, "src", "CartService.cs"))
	touch(t, filepath.Join(dir, "src", "Helpers.cs"))

	helper := NewFileHelper()
	files, err := helper.CollectCSharpFiles([]string{dir}, true,
		[]string{"*Service.cs"}, nil)
	if err != nil {
		t.Fatalf("CollectCSharpFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files matching the include pattern, got %v", files)
	}
	for _, f := range files {
		if filepath.Base(f) == "Helpers.cs" {
			t.Errorf("file outside the include pattern collected: %s", f)
		}
	}

	// The default glob form matches at any depth
	files, err = helper.CollectCSharpFiles([]string{dir}, true,
		[]string{"**/*.cs"}, nil)
	if err != nil {
		t.Fatalf("CollectCSharpFiles failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("expected all 3 files with the default pattern, got %v", files)
	}
}

func TestCollectCSharpFilesRespectsGitignore(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Keep.cs"))
	touch(t, filepath.Join(dir, "scratch", "Ignore.cs"))
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("scratch/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	helper := NewFileHelper()
	files, err := helper.CollectCSharpFiles([]string{dir}, true, nil, nil)
	if err != nil {
		t.Fatalf("CollectCSharpFiles failed: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "Keep.cs" {
		t.Errorf("gitignored files should be skipped: %v", files)
	}

	// Disabled gitignore support collects everything
	helper.RespectGitignore = false
	files, err = helper.CollectCSharpFiles([]string{dir}, true, nil, nil)
	if err != nil {
		t.Fatalf("CollectCSharpFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expected 2 files with gitignore disabled, got %v", files)
	}
}

func TestIsValidCSharpFile(t *testing.T) {
	helper := NewFileHelper()

	tests := []struct {
		path string
		want bool
	}{
		{"Order.cs", true},
		{"ORDER.CS", true},
		{"order.csx", false},
		{"order.ts", false},
		{"order", false},
	}

	for _, tt := range tests {
		if got := helper.IsValidCSharpFile(tt.path); got != tt.want {
			t.Errorf("IsValidCSharpFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestResolveFilePathsPassesFilesThrough(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "A.cs")
	b := filepath.Join(dir, "B.cs")
	touch(t, a)
	touch(t, b)

	helper := NewFileHelper()
	files, err := ResolveFilePaths(helper, []string{a, b}, true, nil, nil)
	if err != nil {
		t.Fatalf("ResolveFilePaths failed: %v", err)
	}
	if len(files) != 2 || files[0] != a || files[1] != b {
		t.Errorf("explicit files should pass through unchanged: %v", files)
	}
}

// stubService records the request it received and returns a canned response
type stubService struct {
	req  domain.SolidRequest
	resp *domain.SolidResponse
}

func (s *stubService) Analyze(_ context.Context, req domain.SolidRequest) (*domain.SolidResponse, error) {
	s.req = req
	return s.resp, nil
}

func TestUseCaseResolvesDirectories(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "One.cs"))
	touch(t, filepath.Join(dir, "Two.cs"))

	stub := &stubService{resp: &domain.SolidResponse{}}
	uc := NewSolidUseCase(stub)

	_, err := uc.Execute(context.Background(), domain.SolidRequest{
		Paths:     []string{dir},
		Recursive: true,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(stub.req.Paths) != 2 {
		t.Errorf("expected 2 resolved files, got %v", stub.req.Paths)
	}
}

func TestUseCaseRejectsEmptyRequest(t *testing.T) {
	uc := NewSolidUseCase(&stubService{resp: &domain.SolidResponse{}})

	if _, err := uc.Execute(context.Background(), domain.SolidRequest{}); err == nil {
		t.Error("expected error for empty paths")
	}
}

func TestUseCaseRejectsEmptyDirectory(t *testing.T) {
	uc := NewSolidUseCase(&stubService{resp: &domain.SolidResponse{}})

	if _, err := uc.Execute(context.Background(), domain.SolidRequest{
		Paths:     []string{t.TempDir()},
		Recursive: true,
	}); err == nil {
		t.Error("expected error when no C# files are found")
	}
}

func TestBuilderRequiresService(t *testing.T) {
	if _, err := NewSolidUseCaseBuilder().Build(); err == nil {
		t.Error("builder should require a service")
	}

	uc, err := NewSolidUseCaseBuilder().
		WithService(&stubService{resp: &domain.SolidResponse{}}).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if uc == nil {
		t.Fatal("expected use case")
	}
}
