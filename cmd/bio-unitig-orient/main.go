package main

// bio-unitig-orient rewrites each unitig of an assembly FASTA on the strand
// (forward or reverse complement) that minimizes the number of dummy entries
// a BWT-style k-mer index must synthesize for k-mers without a predecessor.
//
// Example 1: orient unitigs and write the result.
//
//    bio-unitig-orient -k 31 -input unitigs.fa.gz -output oriented.fa.gz
//
// Example 2: dump the orientation plan, then re-emit later without
// re-optimizing.
//
//    bio-unitig-orient -k 31 -input unitigs.fa -output oriented.fa -plan-output plan.rio
//    bio-unitig-orient -input unitigs.fa -output again.fa -plan-input plan.rio

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bio/encoding/fasta"
	"github.com/grailbio/unitig-orient/orient"
	"github.com/klauspost/compress/gzip"
)

// Collection of options set via cmdline flags.
type orientFlags struct {
	inputPath      string
	outputPath     string
	planInputPath  string
	planOutputPath string
}

// fastaLineWidth is the column at which output sequences are wrapped.
const fastaLineWidth = 60

// readUnitigs reads a FASTA file (plain or compressed, per path suffix) and
// returns the record names and sequences in file order. Sequences are
// uppercased; any other normalization is the producer's job.
func readUnitigs(ctx context.Context, path string) ([]string, []orient.Unitig, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	var r io.Reader = in.Reader(ctx)
	u, _ := compress.NewReaderPath(r, in.Name())
	r = u
	fa, err := fasta.New(r)
	if err != nil {
		_ = in.Close(ctx)
		return nil, nil, err
	}
	names := fa.SeqNames()
	unitigs := make([]orient.Unitig, 0, len(names))
	for i, name := range names {
		n, err := fa.Len(name)
		if err != nil {
			_ = in.Close(ctx)
			return nil, nil, err
		}
		var seq string
		if n > 0 {
			if seq, err = fa.Get(name, 0, n); err != nil {
				_ = in.Close(ctx)
				return nil, nil, err
			}
		}
		unitigs = append(unitigs, orient.Unitig{ID: i, Seq: strings.ToUpper(seq)})
	}
	if err := in.Close(ctx); err != nil {
		return nil, nil, err
	}
	return names, unitigs, nil
}

// writeOriented writes the unitigs as FASTA in input order, applying the
// chosen orientation to each sequence. The output is gzipped if the path ends
// in .gz.
func writeOriented(ctx context.Context, path string, names []string, unitigs []orient.Unitig, oris []orient.Orientation) error {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	var (
		w  io.Writer = out.Writer(ctx)
		gz *gzip.Writer
	)
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(w)
		w = gz
	}
	bw := bufio.NewWriter(w)
	er := errors.Once{}
	for i, name := range names {
		_, err := fmt.Fprintf(bw, ">%s\n", name)
		er.Set(err)
		seq := orient.Sequence(unitigs[i], oris[i])
		for len(seq) > 0 {
			n := fastaLineWidth
			if n > len(seq) {
				n = len(seq)
			}
			_, err = bw.WriteString(seq[:n])
			er.Set(err)
			er.Set(bw.WriteByte('\n'))
			seq = seq[n:]
		}
	}
	er.Set(bw.Flush())
	if gz != nil {
		er.Set(gz.Close())
	}
	er.Set(out.Close(ctx))
	return er.Err()
}

func main() {
	opts := orient.DefaultOpts
	flags := orientFlags{}
	flag.StringVar(&flags.inputPath, "input", "", "FASTA file of unitigs. May be compressed (decided by the path suffix).")
	flag.StringVar(&flags.outputPath, "output", "", "FASTA file to write the oriented unitigs to. Gzipped if the path ends in .gz.")
	flag.StringVar(&flags.planOutputPath, "plan-output", "", "If set, dump the per-unitig orientation decisions to this recordio file.")
	flag.StringVar(&flags.planInputPath, "plan-input", "", `If set, skip optimization and apply the orientation decisions from this
recordio file (produced by an earlier run's -plan-output) to the input.`)
	flag.IntVar(&opts.K, "k", orient.DefaultOpts.K, "K-mer length of the downstream index. Unitigs overlap by k-1 bases.")
	flag.IntVar(&opts.MaxPasses, "max-passes", orient.DefaultOpts.MaxPasses, "Upper limit on the number of optimization passes over the unitigs.")
	flag.BoolVar(&opts.PedanticChecks, "pedantic", false, "Verify the incremental dummy count against a from-scratch recount after every pass. Slow; for debugging.")

	cleanup := grail.Init()
	defer cleanup()
	ctx := vcontext.Background()

	if flags.inputPath == "" || flags.outputPath == "" {
		log.Fatal("both -input and -output are required")
	}
	names, unitigs, err := readUnitigs(ctx, flags.inputPath)
	if err != nil {
		log.Fatalf("read %s: %v", flags.inputPath, err)
	}
	log.Printf("Read %d unitigs from %s", len(unitigs), flags.inputPath)

	var oris []orient.Orientation
	if flags.planInputPath != "" {
		p, err := readPlan(ctx, flags.planInputPath)
		if err != nil {
			log.Fatal(err)
		}
		if len(p.orientations) != len(unitigs) {
			log.Fatalf("plan %s holds %d unitigs, input has %d", flags.planInputPath, len(p.orientations), len(unitigs))
		}
		oris = p.orientations
		log.Printf("Stats: applying stored plan (k=%d): %+v", p.opts.K, p.stats)
	} else {
		if opts.K < 2 {
			log.Fatalf("-k must be at least 2, got %d", opts.K)
		}
		result, err := orient.PickOrientations(unitigs, opts)
		if err != nil {
			log.Fatal(err)
		}
		oris = result.Orientations
		s := result.Stats
		log.Printf("Stats: dummies %d -> %d, %d flips in %d passes, converged=%v",
			s.InitialDummies, s.FinalDummies, s.Flips, s.Passes, s.Converged)
		if !s.Converged {
			log.Printf("Pass cap hit before convergence; emitting the best assignment found")
		}
		if flags.planOutputPath != "" {
			writePlan(ctx, flags.planOutputPath, oris, opts, s)
		}
	}

	if err := writeOriented(ctx, flags.outputPath, names, unitigs, oris); err != nil {
		log.Fatalf("write %s: %v", flags.outputPath, err)
	}
	log.Printf("Wrote %d oriented unitigs to %s", len(unitigs), flags.outputPath)
	log.Printf("All done")
}
