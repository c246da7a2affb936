package forest

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/JosuaKrause/fann/obs"
	"github.com/JosuaKrause/fann/paircache"
	"github.com/JosuaKrause/fann/tree"
)

// persistedTree is the on-disk shape of one slab tree's blob: the tree
// itself plus its provenance header.
type persistedTree struct {
	Root         *tree.Node `json:"root"`
	Fingerprint  string     `json:"fingerprint"`
	DistanceName string     `json:"distance_name"`
}

func slabKey(p interface{ Range() (int, int) }) string {
	start, end := p.Range()
	return fmt.Sprintf("tree%d-%d", start, end-start)
}

// Save writes every dirty slab tree to w as a zip archive keyed by
// "tree{start}-{size}". Clean slabs (adopted from disk) are skipped; if any
// slab has no tree yet, Save fails with ErrNotBuilt. Grounded on
// forest.rs::Forest::save_all.
func (f *Forest) Save(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, s := range f.slabs {
		if s.tr == nil {
			return ErrNotBuilt
		}
		if !s.dirty {
			continue
		}
		name := slabKey(s.provider)
		fw, err := zw.Create(name)
		if err != nil {
			return ErrPersistenceFailure
		}
		blob := persistedTree{Root: s.tr.Root, Fingerprint: s.tr.Fingerprint, DistanceName: s.tr.DistanceName}
		if err := json.NewEncoder(fw).Encode(blob); err != nil {
			return ErrPersistenceFailure
		}
	}
	if err := zw.Close(); err != nil {
		return ErrPersistenceFailure
	}
	return nil
}

// Load reads r as a zip archive and, for each slab, attempts to adopt a
// matching stored tree: if the archive has no entry for that slab's key (or
// force is true), the slab is left unbuilt for a subsequent BuildAll to
// construct; if an entry exists, it is deserialized and its
// (fingerprint, distance_name) validated against the slab's provider —
// matching values adopt the tree as clean, any mismatch fails with
// ErrFingerprintMismatch. Grounded on forest.rs::Forest::load_all.
func (f *Forest) Load(r io.ReaderAt, size int64, force bool) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return ErrPersistenceFailure
	}
	byName := make(map[string]*zip.File, len(zr.File))
	for _, zf := range zr.File {
		byName[zf.Name] = zf
	}

	for _, s := range f.slabs {
		name := slabKey(s.provider)
		zf, ok := byName[name]
		if force || !ok {
			continue
		}

		rc, err := zf.Open()
		if err != nil {
			return ErrPersistenceFailure
		}
		var blob persistedTree
		decErr := json.NewDecoder(rc).Decode(&blob)
		rc.Close()
		if decErr != nil {
			return ErrPersistenceFailure
		}

		if blob.DistanceName != s.provider.Kernel().Name() || blob.Fingerprint != s.provider.Fingerprint() {
			return ErrFingerprintMismatch
		}

		s.tr = &tree.Tree{Root: blob.Root, Fingerprint: blob.Fingerprint, DistanceName: blob.DistanceName}
		s.dirty = false
	}
	return nil
}

// LoadOrBuild loads matching trees from r (per Load), then builds every
// slab still unbuilt, combining the adopt-or-build lifecycle in one call.
func (f *Forest) LoadOrBuild(r io.ReaderAt, size int64, force bool, cache paircache.Cache, sink obs.Sink, treeOpts ...tree.Option) error {
	if err := f.Load(r, size, force); err != nil {
		return err
	}
	return f.BuildAll(cache, sink, treeOpts...)
}
