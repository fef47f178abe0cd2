package repo

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

const sampleCatalog = `[
	{"id":"p1","name":"Ethiopian Beans","description":"bright and floral","price":420,"category":"Coffee","categoryId":"coffee","image":"/img/p1.svg"},
	{"id":"p2","name":"Ceramic Mug","description":"holds coffee","price":250,"category":"Gear","categoryId":"gear","image":"/img/p2.svg","gallery":["/img/p2-a.svg","/img/p2-b.svg"]}
]`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "products.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileCatalogLoad(t *testing.T) {
	r, err := NewFileCatalogRepository(writeCatalog(t, sampleCatalog), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFileCatalogRepository() error = %v", err)
	}

	products, err := r.GetAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[1].Gallery == nil || len(products[1].Gallery) != 2 {
		t.Errorf("p2 gallery = %v, want 2 entries", products[1].Gallery)
	}
}

func TestFileCatalogLoadEnvelope(t *testing.T) {
	r, err := NewFileCatalogRepository(writeCatalog(t, `{"items": `+sampleCatalog+`}`), zap.NewNop())
	if err != nil {
		t.Fatalf("NewFileCatalogRepository() error = %v", err)
	}

	products, err := r.GetAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products from envelope file, want 2", len(products))
	}
}

func TestFileCatalogInitialLoadMustSucceed(t *testing.T) {
	if _, err := NewFileCatalogRepository(writeCatalog(t, `{not json`), zap.NewNop()); err == nil {
		t.Fatal("expected error for malformed catalog file")
	}
}

func TestFileCatalogGetByID(t *testing.T) {
	r, err := NewFileCatalogRepository(writeCatalog(t, sampleCatalog), zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	p, err := r.GetByID("p2")
	if err != nil {
		t.Fatalf("GetByID(p2) error = %v", err)
	}
	if p.Name != "Ceramic Mug" {
		t.Errorf("p.Name = %q", p.Name)
	}

	if _, err := r.GetByID("ghost"); err != ErrProductNotFound {
		t.Errorf("err = %v, want ErrProductNotFound", err)
	}
}

func TestFileCatalogBadReloadKeepsSnapshot(t *testing.T) {
	path := writeCatalog(t, sampleCatalog)
	r, err := NewFileCatalogRepository(path, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(`broken`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := r.reload(); err == nil {
		t.Fatal("expected reload error for broken file")
	}

	products, _ := r.GetAll()
	if len(products) != 2 {
		t.Errorf("got %d products after failed reload, want previous snapshot of 2", len(products))
	}
}
