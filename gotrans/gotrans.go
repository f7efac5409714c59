/*

Gotrans translates nucleotide sequences into proteins in any of the
six reading frames and extracts open reading frames.

The basic usage of gotrans looks like this:

	gotrans sequences.fst

, this will translate the three forward frames of every sequence. The
input can be gzip compressed.

You can select frames and output ORFs instead of translations:

	gotrans --all --orf --minlen 30 sequences.fst.gz

The above will find ORFs of at least 30 amino acids in all six frames.

Every option can also be set with a GOTRANS_* environment variable
or in the .env file. To see all the options run:

	gotrans -h

*/
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"gopkg.in/alecthomas/kingpin.v2"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/gotrans/bio"
	"bitbucket.org/Davydov/gotrans/checkpoint"
	"bitbucket.org/Davydov/gotrans/report"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("gotrans")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("gotrans", "six frame translation and ORF finder").Version(version)

	// input
	inputFileName = app.Arg("input", "FASTA file, can be gzip compressed").Required().ExistingFile()

	// frames
	frames = app.Flag("frames", "forward frame to translate (0, 1 or 2), can be repeated; "+
		"all forward frames by default").Short('f').Envar("GOTRANS_FRAMES").Ints()
	reverse = app.Flag("reverse", "reverse complement frame to translate (0, 1 or 2), can be repeated").
		Short('r').Envar("GOTRANS_REVERSE").Ints()
	all = app.Flag("all", "translate all six frames").Envar("GOTRANS_ALL").Bool()
	rna = app.Flag("rna", "use RNA base pairing (A-U) for the reverse strand").Envar("GOTRANS_RNA").Bool()

	// ORFs
	orf    = app.Flag("orf", "output open reading frames instead of translations").Envar("GOTRANS_ORF").Bool()
	minLen = app.Flag("minlen", "minimum ORF length in amino acids").Default("1").Envar("GOTRANS_MINLEN").Int()

	// technical
	checkpointF = app.Flag("checkpoint", "checkpoint database, allows to resume an interrupted run").
		Envar("GOTRANS_CHECKPOINT").String()
	checkpointSeconds = app.Flag("checkpoint-freq", "save run state every N seconds").
		Default("60").Envar("GOTRANS_CHECKPOINT_FREQ").Float64()

	// output
	outF     = app.Flag("out", "write translations to a file").Short('o').Envar("GOTRANS_OUT").String()
	width    = app.Flag("width", "output line width, 0 for no wrapping").Default("60").Envar("GOTRANS_WIDTH").Int()
	outLogF  = app.Flag("log", "write log to a file").Envar("GOTRANS_LOG").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Envar("GOTRANS_LOGLEVEL").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json summary to a file").Envar("GOTRANS_JSON").String()
	plotF = app.Flag("plot", "write ORF length histogram to a file (png, svg or pdf)").
		Envar("GOTRANS_PLOT").String()
)

// openCheckpoint opens the checkpoint database and returns the id of
// the run to continue. A new run id is generated when there is no
// unfinished run.
func openCheckpoint(fn string, key []byte) (*bolt.DB, *checkpoint.CheckpointIO, string) {
	runID := uuid.NewString()
	if fn == "" {
		return nil, checkpoint.NewCheckpointIO(nil, key, *checkpointSeconds), runID
	}
	db, err := bolt.Open(fn, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Fatal("Error opening checkpoint database:", err)
	}
	cio := checkpoint.NewCheckpointIO(db, key, *checkpointSeconds)
	data, err := cio.Load()
	switch {
	case err != nil:
		log.Error("Error loading checkpoint:", err)
	case data == nil:
		log.Info("No checkpoint found")
	case data.Final:
		if err := cio.Drop(data.RunID); err != nil {
			log.Error("Error removing finished run:", err)
		}
	default:
		runID = data.RunID
	}
	return db, cio, runID
}

func main() {
	// .env values are only defaults for the environment
	dotenvErr := godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "gotrans")
	logging.SetLevel(level, "translate")
	logging.SetLevel(level, "checkpoint")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if dotenvErr != nil {
		log.Debug("No .env found, using environment only")
	}

	opts := options{
		frames:  *frames,
		reverse: *reverse,
		orf:     *orf,
		minLen:  *minLen,
		width:   *width,
	}
	if *all {
		opts.frames = []int{0, 1, 2}
		opts.reverse = []int{0, 1, 2}
	} else if len(opts.frames) == 0 && len(opts.reverse) == 0 {
		opts.frames = []int{0, 1, 2}
	}
	if *rna {
		opts.alphabet = bio.RNA
	}
	// frame numbers are checked before reading the input
	if _, err := opts.builder(nil).Get(); err != nil {
		log.Fatal(err)
	}

	seqs, err := bio.OpenFasta(*inputFileName)
	if err != nil {
		log.Fatal("Error reading input:", err)
	}
	log.Infof("Read %d sequences", len(seqs))

	db, cio, runID := openCheckpoint(*checkpointF, opts.key(*inputFileName))
	if db != nil {
		defer db.Close()
	}
	log.Infof("Run id: %s", runID)

	out := os.Stdout
	if *outF != "" {
		out, err = os.Create(*outF)
		if err != nil {
			log.Fatal("Error creating output file:", err)
		}
		defer out.Close()
	}

	summary := &report.RunSummary{
		Version:     version,
		RunID:       runID,
		CommandLine: os.Args,
	}
	r := newRunner(opts, cio, runID, summary)
	if err := r.run(seqs, out); err != nil {
		log.Fatal(err)
	}

	if *plotF != "" {
		err := report.PlotLengths(*plotF, "ORF lengths", r.orfLengths, 0)
		if err == report.ErrNoData {
			log.Warning("No ORFs found, not plotting")
		} else if err != nil {
			log.Error("Error plotting ORF lengths:", err)
		}
	}

	// output summary in json format
	if *jsonF != "" {
		f, err := os.Create(*jsonF)
		if err != nil {
			log.Error("Error creating json output file:", err)
		} else {
			if err := summary.WriteJSON(f); err != nil {
				log.Error("Error writing json summary:", err)
			}
			f.Close()
		}
	}
}
