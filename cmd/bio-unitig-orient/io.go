package main

// This file defines writePlan and readPlan. A plan file records the
// per-unitig orientation decisions of one run so that the oriented FASTA can
// be re-emitted later without re-running the optimizer.

import (
	"bytes"
	"context"
	"encoding/gob"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/recordio"
	"github.com/grailbio/base/recordio/recordiozstd"
	"github.com/grailbio/unitig-orient/orient"
	"github.com/pkg/errors"
)

const (
	// <planVersionHeader, planVersion> is stored in a recordio header.
	planVersionHeader = "orientversion"
	planVersion       = "ORIENT_V1"
)

// planTrailer is stored in the trailer section of the recordio file.
type planTrailer struct {
	// Opts is the options the plan was computed with.
	Opts orient.Opts
	// Stats is the outcome of the run that produced the plan.
	Stats orient.Stats
	// Unitigs is the number of decisions in the file.
	Unitigs int
}

// planRecord is one per-unitig decision. ID is the input-order index.
type planRecord struct {
	ID          int
	Orientation orient.Orientation
}

// writePlan dumps the orientation decisions to a recordio file. Any error
// will crash the process.
func writePlan(ctx context.Context, path string, oris []orient.Orientation, opts orient.Opts, stats orient.Stats) {
	recordiozstd.Init()
	out, err := file.Create(ctx, path)
	if err != nil {
		log.Panicf("plan create %v: %v", path, err)
	}
	w := recordio.NewWriter(out.Writer(ctx), recordio.WriterOpts{
		Transformers: []string{recordiozstd.Name},
	})
	w.AddHeader(planVersionHeader, planVersion)
	w.AddHeader(recordio.KeyTrailer, true)
	for id, o := range oris {
		b := bytes.NewBuffer(nil)
		if err := gob.NewEncoder(b).Encode(planRecord{ID: id, Orientation: o}); err != nil {
			log.Panic(err)
		}
		w.Append(b.Bytes())
	}
	b := bytes.NewBuffer(nil)
	if err := gob.NewEncoder(b).Encode(planTrailer{Opts: opts, Stats: stats, Unitigs: len(oris)}); err != nil {
		log.Panic(err)
	}
	w.SetTrailer(b.Bytes())
	if err := w.Finish(); err != nil {
		log.Panicf("plan close %v: %v", path, err)
	}
	if err := out.Close(ctx); err != nil {
		log.Panicf("plan close %v: %v", path, err)
	}
	log.Printf("Wrote %d orientation decisions to %s", len(oris), path)
}

// plan is the in-memory form of a plan file.
type plan struct {
	orientations []orient.Orientation
	opts         orient.Opts
	stats        orient.Stats
}

// readPlan reads a file produced by writePlan. Unlike writing, reading
// reports errors to the caller: a bad plan file is a user mistake, not a bug.
func readPlan(ctx context.Context, path string) (plan, error) {
	recordiozstd.Init()
	in, err := file.Open(ctx, path)
	if err != nil {
		return plan{}, err
	}
	r := recordio.NewScanner(in.Reader(ctx), recordio.ScannerOpts{})
	version := ""
	for _, kv := range r.Header() {
		if kv.Key == planVersionHeader {
			version = kv.Value.(string)
			break
		}
	}
	if version != planVersion {
		_ = in.Close(ctx)
		return plan{}, errors.Errorf("plan %s: version %q, want %q", path, version, planVersion)
	}
	var trailer planTrailer
	if err := gob.NewDecoder(bytes.NewReader(r.Trailer())).Decode(&trailer); err != nil {
		_ = in.Close(ctx)
		return plan{}, errors.Wrapf(err, "plan %s: corrupt trailer", path)
	}
	p := plan{
		orientations: make([]orient.Orientation, trailer.Unitigs),
		opts:         trailer.Opts,
		stats:        trailer.Stats,
	}
	n := 0
	for r.Scan() {
		var rec planRecord
		if err := gob.NewDecoder(bytes.NewReader(r.Get().([]byte))).Decode(&rec); err != nil {
			_ = in.Close(ctx)
			return plan{}, errors.Wrapf(err, "plan %s: corrupt record %d", path, n)
		}
		if rec.ID < 0 || rec.ID >= trailer.Unitigs {
			_ = in.Close(ctx)
			return plan{}, errors.Errorf("plan %s: record ID %d out of range [0,%d)", path, rec.ID, trailer.Unitigs)
		}
		p.orientations[rec.ID] = rec.Orientation
		n++
	}
	if err := r.Err(); err != nil {
		_ = in.Close(ctx)
		return plan{}, errors.Wrapf(err, "plan %s", path)
	}
	if err := in.Close(ctx); err != nil {
		return plan{}, err
	}
	if n != trailer.Unitigs {
		return plan{}, errors.Errorf("plan %s: read %d records, trailer says %d", path, n, trailer.Unitigs)
	}
	return p, nil
}
