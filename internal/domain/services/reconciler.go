package services

import (
	"github.com/elemcraft/elemcraft/internal/domain/entities"
	"github.com/elemcraft/elemcraft/internal/domain/values"
)

// ReconcileReport lists what a reconciliation pass repaired.
type ReconcileReport struct {
	// RestoredBase holds base elements whose record was copied back from seed.
	RestoredBase []string

	// BrokenBase holds base elements missing from seed data too; they got an
	// error placeholder record.
	BrokenBase []string

	// Dropped holds discovered names removed because their record was lost.
	Dropped []string
}

// Changed reports whether the pass modified the world.
func (r ReconcileReport) Changed() bool {
	return len(r.RestoredBase) > 0 || len(r.BrokenBase) > 0 || len(r.Dropped) > 0
}

// Reconciler repairs a world against the seed bundle.
type Reconciler struct {
	seed *entities.SeedBundle
}

// NewReconciler creates a reconciler backed by seed.
func NewReconciler(seed *entities.SeedBundle) *Reconciler {
	return &Reconciler{seed: seed}
}

// Reconcile makes sure base elements have records and are discovered, then
// drops discovered names that have no record. It never invents records for
// non-base elements.
func (r *Reconciler) Reconcile(world *entities.World) ReconcileReport {
	var report ReconcileReport

	for _, base := range r.seed.BaseElements {
		if !world.Vocabulary.Has(base) {
			if rec, ok := r.seed.Record(base); ok {
				world.Vocabulary.Set(base, rec)
				report.RestoredBase = append(report.RestoredBase, base)
			} else {
				world.Vocabulary.Set(base, entities.BrokenBaseRecord())
				report.BrokenBase = append(report.BrokenBase, base)
			}
		}
		world.Discovered.Add(base)
	}

	for _, name := range world.DanglingDiscoveries() {
		world.Discovered.Remove(name)
		report.Dropped = append(report.Dropped, name)
	}

	return report
}

// RecoverRecord reinstalls the record of a recipe result that has lost it.
// The seed copy is used when available; otherwise a recovered placeholder is
// installed and fromSeed is false.
func (r *Reconciler) RecoverRecord(world *entities.World, name string) (rec entities.ElementRecord, fromSeed bool) {
	name = values.Canonicalize(name)
	if seeded, ok := r.seed.Record(name); ok {
		world.Vocabulary.Set(name, seeded)
		return seeded, true
	}
	rec = entities.RecoveredRecord()
	world.Vocabulary.Set(name, rec)
	return rec, false
}
