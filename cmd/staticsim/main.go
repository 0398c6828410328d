package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/staticsim/internal/analysis"
	"github.com/san-kum/staticsim/internal/automation"
	"github.com/san-kum/staticsim/internal/config"
	"github.com/san-kum/staticsim/internal/equilibrium"
	"github.com/san-kum/staticsim/internal/export"
	"github.com/san-kum/staticsim/internal/i18n"
	"github.com/san-kum/staticsim/internal/physics"
	"github.com/san-kum/staticsim/internal/scene"
	"github.com/san-kum/staticsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	// Persistent
	configFile string
	seed       int64
	lang       string
	logLevel   string
	theme      string
	// Level 1
	m1     float64
	m2     float64
	mu     float64
	angle  int
	preset string
	// Level 2
	p1Weight   int
	p1Dist     int
	p2Dist     int
	weightP2   float64
	showAnswer bool
	// Plots
	points int
	// Export
	outFile   string
	braille   bool
	svgWidth  int
	svgHeight int
)

// main runs the staticsim CLI and exits with status 1 when a command fails.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "staticsim",
		Short:        "statics puzzles: inclined plane and seesaw",
		SilenceUsage: true,
		RunE:         runPlay,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&lang, "lang", config.DefaultLang, "message language (en, es)")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("color theme %v", viz.ThemeNames()))

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "play both levels in the terminal",
		RunE:  runPlay,
	}

	inclineCmd := &cobra.Command{
		Use:   "incline",
		Short: "evaluate one inclined plane setup",
		RunE:  runIncline,
	}
	addInclineFlags(inclineCmd)

	seesawCmd := &cobra.Command{
		Use:   "seesaw",
		Short: "generate a seesaw puzzle and optionally judge a weight",
		RunE:  runSeesaw,
	}
	addPuzzleFlags(seesawCmd)
	seesawCmd.Flags().Float64Var(&weightP2, "weight", 0, "weight of person 2 to judge (kg)")
	seesawCmd.Flags().BoolVar(&showAnswer, "show-answer", false, "print the balancing weight")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "enumerate the seesaw generator domain",
		RunE:  runVerify,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot parameter sweeps",
	}
	plotInclineCmd := &cobra.Command{
		Use:   "incline",
		Short: "balance margin over the hanging mass",
		RunE:  plotIncline,
	}
	plotInclineCmd.Flags().Float64Var(&m1, "m1", config.DefaultM1, "mass of the block on the ramp (kg)")
	plotInclineCmd.Flags().Float64Var(&mu, "mu", config.DefaultMu, "static friction coefficient")
	plotInclineCmd.Flags().IntVar(&angle, "angle", 45, "ramp angle")
	plotInclineCmd.Flags().IntVar(&points, "points", 80, "number of samples")
	plotSeesawCmd := &cobra.Command{
		Use:   "seesaw",
		Short: "board tilt over the counterweight",
		RunE:  plotSeesaw,
	}
	addPuzzleFlags(plotSeesawCmd)
	plotSeesawCmd.Flags().IntVar(&points, "points", 80, "number of samples")
	plotCmd.AddCommand(plotInclineCmd, plotSeesawCmd)

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted session",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list inclined plane presets",
		RunE:  listPresets,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write a scene as SVG",
	}
	ef := exportCmd.PersistentFlags()
	ef.StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	ef.BoolVar(&braille, "braille", false, "trace the terminal canvas instead of vector shapes")
	ef.IntVar(&svgWidth, "width", 800, "image width in pixels")
	ef.IntVar(&svgHeight, "height", 600, "image height in pixels")
	exportInclineCmd := &cobra.Command{
		Use:   "incline",
		Short: "ramp with force arrows",
		RunE:  exportIncline,
	}
	addInclineFlags(exportInclineCmd)
	exportSeesawCmd := &cobra.Command{
		Use:   "seesaw",
		Short: "board with weight arrows",
		RunE:  exportSeesaw,
	}
	addPuzzleFlags(exportSeesawCmd)
	exportSeesawCmd.Flags().Float64Var(&weightP2, "weight", 0, "weight of person 2 (kg)")
	exportCmd.AddCommand(exportInclineCmd, exportSeesawCmd)

	rootCmd.AddCommand(playCmd, inclineCmd, seesawCmd, verifyCmd, plotCmd, scenarioCmd, presetsCmd, exportCmd)
	return rootCmd
}

func addInclineFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&m1, "m1", config.DefaultM1, "mass of the block on the ramp (kg)")
	cmd.Flags().Float64Var(&m2, "m2", config.DefaultM2, "hanging mass (kg)")
	cmd.Flags().Float64Var(&mu, "mu", config.DefaultMu, "static friction coefficient")
	cmd.Flags().IntVar(&angle, "angle", 0, fmt.Sprintf("ramp angle %v (0 = random)", equilibrium.Angles))
	cmd.Flags().StringVar(&preset, "preset", "", "use preset setup")
}

func addPuzzleFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p1Weight, "p1-weight", 0, "weight of person 1 (kg)")
	cmd.Flags().IntVar(&p1Dist, "p1-dist", 0, "distance of person 1 from the pivot (cm)")
	cmd.Flags().IntVar(&p2Dist, "p2-dist", 0, "distance of person 2 from the pivot (cm)")
}

// loadConfig reads the config file when given and applies changed flags
// on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("lang") {
		cfg.Lang = lang
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes text logs to w at the configured level.
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func newRand(cfg *config.Config) *rand.Rand {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(s))
}

func engineOptions(cfg *config.Config, logger *slog.Logger) []physics.Option {
	return []physics.Option{physics.WithLogger(logger), physics.WithMaxDraws(cfg.Seesaw.MaxDraws)}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs only go to stderr on request.
	out := io.Discard
	if cfg.LogLevel != "" {
		out = cmd.ErrOrStderr()
	}
	logger, err := newLogger(cfg, out)
	if err != nil {
		return err
	}

	app, err := viz.NewApp(cfg, newRand(cfg), logger)
	if err != nil {
		return err
	}
	return viz.RunInteractive(app)
}

// evaluateIncline resolves the setup from config, preset and flags, in
// that order, and evaluates it once.
func evaluateIncline(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (physics.InclineInputs, physics.InclineResult, error) {
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return physics.InclineInputs{}, physics.InclineResult{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p.Apply(cfg)
	}
	in := physics.InclineInputs{Mass1: cfg.Incline.M1, Mass2: cfg.Incline.M2, Mu: cfg.Incline.Mu}
	if cmd.Flags().Changed("m1") {
		in.Mass1 = m1
	}
	if cmd.Flags().Changed("m2") {
		in.Mass2 = m2
	}
	if cmd.Flags().Changed("mu") {
		in.Mu = mu
	}
	deg := cfg.Incline.Angle
	if cmd.Flags().Changed("angle") {
		deg = angle
	}

	plane := physics.NewInclinedPlane(newRand(cfg), engineOptions(cfg, logger)...)
	if deg != 0 {
		if err := plane.ResetWithAngle(deg); err != nil {
			return in, physics.InclineResult{}, err
		}
	}
	return in, plane.Evaluate(in.Mass1, in.Mass2, in.Mu), nil
}

func runIncline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	in, res, err := evaluateIncline(cmd, cfg, logger)
	if err != nil {
		return err
	}

	tr := i18n.New(cfg.Lang)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "angle: %d°\n", res.Angle)
	fmt.Fprintf(out, "m1: %.4g kg  m2: %.4g kg  mu: %.4g\n\n", in.Mass1, in.Mass2, in.Mu)
	if res.Kind != equilibrium.InvalidInput {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "FORCE\tFORMULA\tMAGNITUDE (N)")
		fmt.Fprintf(w, "W1\tm1 * g\t%.3f\n", res.Weight1)
		fmt.Fprintf(w, "W2\tm2 * g\t%.3f\n", res.Weight2)
		fmt.Fprintf(w, "W1 parallel\tW1 * sin(θ)\t%.3f\n", res.ParallelWeight)
		fmt.Fprintf(w, "N1\tW1 * cos(θ)\t%.3f\n", res.NormalForce)
		fmt.Fprintf(w, "T\tW2\t%.3f\n", res.Tension)
		fmt.Fprintf(w, "Ff max\tμ * N1\t%.3f\n", res.MaxFriction)
		fmt.Fprintf(w, "Ff (%s)\t\t%.3f\n", res.FrictionDirection, res.Friction)
		fmt.Fprintf(w, "net\tW1 parallel - W2\t%.3f\n", res.NetForce)
		w.Flush()

		lo, hi := analysis.BalancedWindow(float64(res.Angle), in.Mass1, in.Mu)
		fmt.Fprintf(out, "\nbalancing m2: (%.4f, %.4f) kg\n", lo, hi)
	}
	fmt.Fprintf(out, "\n%s: %s\n", res.Kind, tr.Incline(res))
	return nil
}

// puzzleFromFlags returns the puzzle given on the command line, or false
// when none of the puzzle flags were set.
func puzzleFromFlags(cmd *cobra.Command) (physics.Puzzle, bool, error) {
	f := cmd.Flags()
	if !f.Changed("p1-weight") && !f.Changed("p1-dist") && !f.Changed("p2-dist") {
		return physics.Puzzle{}, false, nil
	}
	if !f.Changed("p1-weight") || !f.Changed("p1-dist") || !f.Changed("p2-dist") {
		return physics.Puzzle{}, false, errors.New("--p1-weight, --p1-dist and --p2-dist must be given together")
	}
	return physics.Puzzle{WeightP1: p1Weight, DistP1: p1Dist, DistP2: p2Dist}, true, nil
}

func newSeesaw(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*physics.Seesaw, error) {
	ss, err := physics.NewSeesaw(newRand(cfg), engineOptions(cfg, logger)...)
	if err != nil {
		return nil, err
	}
	p, ok, err := puzzleFromFlags(cmd)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := ss.Load(p); err != nil {
			return nil, err
		}
	}
	return ss, nil
}

func runSeesaw(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ss, err := newSeesaw(cmd, cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "person 1: %d kg at %d cm\n", ss.WeightP1(), ss.DistP1())
	fmt.Fprintf(out, "person 2: ? kg at %d cm\n", ss.DistP2())
	if showAnswer || cfg.Seesaw.ShowAnswer {
		fmt.Fprintf(out, "answer: %.4f kg\n", ss.CorrectWeightP2())
	}

	if !cmd.Flags().Changed("weight") {
		return nil
	}
	res := ss.Evaluate(weightP2)
	fmt.Fprintf(out, "\nmoment P1: %.2f kg·cm\n", res.MomentP1)
	fmt.Fprintf(out, "moment P2: %.2f kg·cm\n", res.MomentP2)
	fmt.Fprintf(out, "tilt: %.2f°\n", res.Tilt)
	fmt.Fprintf(out, "\n%s: %s\n", res.Kind, i18n.New(cfg.Lang).Seesaw(res))
	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	stats := analysis.EnumerateSeesaw()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "puzzles\t%d\n", stats.Total)
	fmt.Fprintf(w, "clean\t%d\n", stats.Clean)
	fmt.Fprintf(w, "acceptance\t%.4f\n", stats.AcceptanceRate)
	fmt.Fprintf(w, "expected draws\t%.2f\n", stats.ExpectedDraws)
	fmt.Fprintf(w, "draw cap\t%d\n", physics.MaxGeneratorDraws)
	fmt.Fprintf(w, "answers\t[%.4f, %.4f]\n", stats.MinAnswer, stats.MaxAnswer)
	fmt.Fprintf(w, "max moment error\t%.3g\n", stats.MaxMomentError)
	w.Flush()

	if stats.Clean == 0 {
		return fmt.Errorf("%w: no clean puzzle in the domain", equilibrium.ErrGeneratorExhausted)
	}
	if !stats.Deterministic {
		return fmt.Errorf("moment error %.3g exceeds %.0e", stats.MaxMomentError, equilibrium.AnswerTolerance)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nok")
	return nil
}

func plotIncline(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	deg, mass1, friction := angle, m1, mu
	flags := cmd.Flags()
	if !flags.Changed("angle") && cfg.Incline.Angle != 0 {
		deg = cfg.Incline.Angle
	}
	if !flags.Changed("m1") {
		mass1 = cfg.Incline.M1
	}
	if !flags.Changed("mu") {
		friction = cfg.Incline.Mu
	}

	if !equilibrium.ValidAngle(deg) {
		return fmt.Errorf("%w: %d (allowed: %v)", equilibrium.ErrUnknownAngle, deg, equilibrium.Angles)
	}
	if !(mass1 > 0) || !(friction >= 0) {
		return fmt.Errorf("%w: m1 must be > 0 and mu >= 0 (got m1=%g, mu=%g)", equilibrium.ErrParameterBounds, mass1, friction)
	}
	lo, hi := analysis.BalancedWindow(float64(deg), mass1, friction)
	if !equilibrium.Finite(2 * hi * equilibrium.Gravity) {
		return fmt.Errorf("%w: m1=%g, mu=%g overflow the force range", equilibrium.ErrParameterBounds, mass1, friction)
	}
	sweep := analysis.InclineSweep(float64(deg), mass1, friction, 0, 2*hi, points)
	logger.Debug("incline sweep", "angle", deg, "m1", mass1, "mu", friction, "lo", lo, "hi", hi, "points", len(sweep))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "angle: %d°  m1: %.4g kg  mu: %.4g\n", deg, mass1, friction)
	fmt.Fprintf(out, "m2 sampled over [0, %.4f] kg, balanced in (%.4f, %.4f)\n\n", 2*hi, lo, hi)
	graph := asciigraph.Plot(analysis.Values(sweep),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("balance margin (N) vs m2, > 0 holds"),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func plotSeesaw(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ss, err := newSeesaw(cmd, cfg, logger)
	if err != nil {
		return err
	}

	correct := ss.CorrectWeightP2()
	sweep := analysis.SeesawSweep(ss.Puzzle(), 0, 2*correct, points)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "person 1: %d kg at %d cm, person 2 at %d cm\n", ss.WeightP1(), ss.DistP1(), ss.DistP2())
	fmt.Fprintf(out, "weight sampled over [0, %.4f] kg\n\n", 2*correct)
	graph := asciigraph.Plot(analysis.Values(sweep),
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("board tilt (deg) vs weight of person 2"),
	)
	fmt.Fprintln(out, graph)
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	opts := automation.Options{Logger: logger, MaxDraws: cfg.Seesaw.MaxDraws}
	if cfg.Seed != 0 {
		opts.Rand = newRand(cfg)
	}

	results, runErr := automation.RunScenario(cmd.Context(), sc, opts)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tLEVEL\tACTION\tOUTCOME\tATTEMPTS\tWON\tDETAIL")
	for _, r := range results {
		outcome, detail := "-", ""
		if r.Action == automation.ActionEvaluate {
			outcome = r.Outcome.String()
		}
		switch r.Level {
		case automation.LevelIncline:
			detail = fmt.Sprintf("angle %d°", r.Angle)
		case automation.LevelSeesaw:
			detail = fmt.Sprintf("tilt %.2f°", r.Tilt)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%v\t%s\n", r.Step, r.Level, r.Action, outcome, r.Attempts, r.Won, detail)
	}
	w.Flush()

	if runErr != nil {
		return fmt.Errorf("scenario %s: %w", sc.Name, runErr)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nscenario %s passed (%d steps)\n", sc.Name, len(results))
	return nil
}

func checkImageSize() error {
	if svgWidth < 64 || svgHeight < 64 {
		return fmt.Errorf("image size %dx%d too small (min 64x64)", svgWidth, svgHeight)
	}
	return nil
}

func exportIncline(cmd *cobra.Command, args []string) error {
	if err := checkImageSize(); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	_, res, err := evaluateIncline(cmd, cfg, logger)
	if err != nil {
		return err
	}

	sc := scene.ProjectIncline(res)
	if braille {
		c := viz.NewCanvas(svgWidth/16, svgHeight/32)
		viz.DrawIncline(c, sc)
		return writeSVG(cmd, export.CanvasToSVG(c, 8))
	}
	return writeSVG(cmd, export.InclineToSVG(sc, svgWidth, svgHeight))
}

func exportSeesaw(cmd *cobra.Command, args []string) error {
	if err := checkImageSize(); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ss, err := newSeesaw(cmd, cfg, logger)
	if err != nil {
		return err
	}

	var weight, tilt float64
	if cmd.Flags().Changed("weight") {
		res := ss.Evaluate(weightP2)
		if res.Kind != equilibrium.InvalidInput {
			weight = res.WeightP2
		}
		tilt = res.Tilt
	}
	sc := scene.ProjectSeesaw(ss.Puzzle(), weight, tilt)
	if braille {
		c := viz.NewCanvas(svgWidth/16, svgHeight/32)
		viz.DrawSeesaw(c, sc)
		return writeSVG(cmd, export.CanvasToSVG(c, 8))
	}
	return writeSVG(cmd, export.SeesawToSVG(sc, svgWidth, svgHeight))
}

// writeSVG writes doc to --out, or to stdout when no file is given.
func writeSVG(cmd *cobra.Command, doc string) error {
	if outFile == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), doc)
		return err
	}
	if err := os.WriteFile(outFile, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outFile)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tANGLE\tM1\tM2\tMU\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.4g\t%.4g\t%.4g\t%s\n", name, p.Angle, p.M1, p.M2, p.Mu, p.Description)
	}
	return w.Flush()
}
