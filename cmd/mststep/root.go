package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/mststep/config"
	"github.com/katalvlaran/mststep/console"
	"github.com/katalvlaran/mststep/core"
	"github.com/katalvlaran/mststep/engine"
)

// rootOptions holds the flags shared by run and step. Scenario fields set on
// the command line override the scenario file.
type rootOptions struct {
	file         string
	algorithm    string
	generator    string
	n            int
	rows, cols   int
	probability  float64
	seed         int64
	minWeight    int64
	maxWeight    int64
	unweighted   bool
	delay        time.Duration
	startPaused  bool
	breakSteps   []int
	breakWeights []int64
	breakEdges   []string
	verbose      bool
	noColor      bool
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "mststep",
		Short:        "Step through minimum spanning tree algorithms edge by edge",
		Version:      version,
		SilenceUsage: true,
	}
	opts.bind(root.PersistentFlags())
	root.AddCommand(newRunCmd(opts), newStepCmd(opts), newVersionCmd(version))

	return root
}

func (o *rootOptions) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.file, "file", "f", "", "scenario YAML file")
	fs.StringVarP(&o.algorithm, "algorithm", "a", engine.MethodKruskal, "algorithm: kruskal | prim")
	fs.StringVarP(&o.generator, "generator", "g", config.GeneratorRandom, "graph generator: path|cycle|star|wheel|complete|grid|random")
	fs.IntVarP(&o.n, "n", "n", 6, "number of vertices")
	fs.IntVar(&o.rows, "rows", 0, "grid rows")
	fs.IntVar(&o.cols, "cols", 0, "grid columns")
	fs.Float64VarP(&o.probability, "probability", "p", 0.5, "edge probability for the random generator")
	fs.Int64Var(&o.seed, "seed", 1, "seed for generated topology and weights")
	fs.Int64Var(&o.minWeight, "min-weight", 1, "smallest generated weight")
	fs.Int64Var(&o.maxWeight, "max-weight", 9, "largest generated weight")
	fs.BoolVar(&o.unweighted, "unweighted", false, "generate weight-less edges")
	fs.DurationVarP(&o.delay, "delay", "d", 0, "pause between edges")
	fs.BoolVar(&o.startPaused, "start-paused", false, "open the run paused before the first edge")
	fs.IntSliceVar(&o.breakSteps, "break-step", nil, "pause at these 1-based steps")
	fs.Int64SliceVar(&o.breakWeights, "break-weight", nil, "pause at edges with these weights")
	fs.StringSliceVar(&o.breakEdges, "break-edge", nil, "pause at these edges, written A-B")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&o.noColor, "no-color", false, "disable colors")
}

// scenario loads the file (or the default scenario) and applies every flag
// the user set explicitly.
func (o *rootOptions) scenario(fs *pflag.FlagSet) (*config.Scenario, error) {
	s := config.Default()
	if o.file != "" {
		var err error
		if s, err = config.Load(o.file); err != nil {
			return nil, err
		}
	}

	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("algorithm", func() { s.Algorithm = o.algorithm })
	set("delay", func() { s.StepDelayMillis = int(o.delay / time.Millisecond) })
	set("start-paused", func() { s.StartPaused = o.startPaused })
	set("break-step", func() { s.Breakpoints.Steps = o.breakSteps })
	set("break-weight", func() { s.Breakpoints.Weights = o.breakWeights })
	set("break-edge", func() { s.Breakpoints.Edges = o.breakEdges })
	set("generator", func() {
		s.Graph = config.GraphSpec{Generator: o.generator, N: o.n, Rows: o.rows, Cols: o.cols,
			Probability: o.probability, Seed: o.seed, MinWeight: o.minWeight, MaxWeight: o.maxWeight}
	})
	set("n", func() { s.Graph.N = o.n })
	set("rows", func() { s.Graph.Rows = o.rows })
	set("cols", func() { s.Graph.Cols = o.cols })
	set("probability", func() { s.Graph.Probability = o.probability })
	set("seed", func() { s.Graph.Seed = o.seed })
	set("min-weight", func() { s.Graph.MinWeight = o.minWeight })
	set("max-weight", func() { s.Graph.MaxWeight = o.maxWeight })
	set("unweighted", func() { s.Graph.Unweighted = o.unweighted })

	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}

	return s, nil
}

// logger writes to stderr; colors follow the terminal.
func (o *rootOptions) logger(stderr io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: o.noColor || !isTerminal(stderr),
		FullTimestamp: true,
	})

	return log
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// setup resolves the scenario into a graph and a runner whose events are
// rendered to out.
func (o *rootOptions) setup(cmd *cobra.Command, out io.Writer) (*config.Scenario, *core.Graph, *engine.Runner, error) {
	s, err := o.scenario(cmd.Flags())
	if err != nil {
		return nil, nil, nil, err
	}
	g, err := s.BuildGraph()
	if err != nil {
		return nil, nil, nil, err
	}
	settings, err := s.Settings(g)
	if err != nil {
		return nil, nil, nil, err
	}

	log := o.logger(cmd.ErrOrStderr())
	log.WithFields(logrus.Fields{
		"algorithm": s.Algorithm,
		"vertices":  g.Order(),
		"edges":     g.Size(),
	}).Info("scenario loaded")

	r, err := engine.New(s.Algorithm, g,
		engine.WithLogger(log),
		engine.WithSettings(settings),
		engine.WithObserver(console.NewRenderer(out, !o.noColor && isTerminal(cmd.OutOrStdout()), console.WithGraph(g))),
	)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to create engine")
	}

	return s, g, r, nil
}
