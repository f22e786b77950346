package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/numgrove/bvp/colnew"
	"github.com/numgrove/bvp/internal/config"
	"github.com/numgrove/bvp/internal/render"
	"github.com/numgrove/bvp/jacobian"
	"github.com/numgrove/bvp/problems"
)

var (
	configFile string
	preset     string

	// check
	samples int
	seed    int64

	// size
	degreesArg string
	colpoints  int
	maxMesh    int
	plotGrowth bool

	// guess
	component int
	svgOut    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bvpsolve",
		Short: "boundary value problem toolkit",
		Long: "bvpsolve inspects and validates multi-point boundary value problems:\n" +
			"Jacobian checking against finite differences, kernel workspace sizing,\n" +
			"and initial-guess profiles for the built-in problem catalogue.",
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration (default, quick, strict)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list built-in problems",
		RunE:  listProblems,
	}

	checkCmd := &cobra.Command{
		Use:   "check [problem]",
		Short: "validate analytic Jacobians against finite differences",
		Args:  cobra.ExactArgs(1),
		RunE:  checkProblem,
	}
	checkCmd.Flags().IntVar(&samples, "samples", 0, "random samples per check (0 = config default)")
	checkCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = deterministic default)")

	sizeCmd := &cobra.Command{
		Use:   "size",
		Short: "report kernel workspace sizes",
		RunE:  reportSize,
	}
	sizeCmd.Flags().StringVar(&degreesArg, "degrees", "2", "comma-separated equation degrees")
	sizeCmd.Flags().IntVar(&colpoints, "colpoints", 0, "collocation points per subinterval (0 = default)")
	sizeCmd.Flags().IntVar(&maxMesh, "max-mesh", 0, "maximum mesh size (0 = config default)")
	sizeCmd.Flags().BoolVar(&plotGrowth, "plot", false, "plot float workspace growth against mesh size")

	guessCmd := &cobra.Command{
		Use:   "guess [problem]",
		Short: "plot a problem's initial-guess profile",
		Args:  cobra.ExactArgs(1),
		RunE:  plotGuess,
	}
	guessCmd.Flags().IntVar(&component, "component", 0, "z-vector component to plot")
	guessCmd.Flags().StringVar(&svgOut, "svg", "", "write the curve as SVG to this file")

	rootCmd.AddCommand(listCmd, checkCmd, sizeCmd, guessCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return cfg, nil
	}
	return config.DefaultConfig(), nil
}

func listProblems(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range problems.Names() {
		e, err := problems.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Desc)
	}
	return w.Flush()
}

func checkProblem(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, err := problems.Get(args[0])
	if err != nil {
		return err
	}
	p := e.Build()

	opt := &jacobian.Options{
		Samples: cfg.Check.Samples,
		Step:    cfg.Check.Step,
		AbsTol:  cfg.Check.AbsTol,
		RelTol:  cfg.Check.RelTol,
	}
	if samples > 0 {
		opt.Samples = samples
	}
	if seed != 0 {
		opt.Rand = rand.New(rand.NewSource(seed))
	} else if cfg.Check.Seed != 0 {
		opt.Rand = rand.New(rand.NewSource(cfg.Check.Seed))
	}

	fmt.Println(render.Title(fmt.Sprintf("jacobian check: %s", e.Name)))
	fmt.Println(render.Note(e.Desc))
	if err := colnew.CheckJacobians(p, opt); err != nil {
		fmt.Println(render.Fail("FAIL"), err)
		os.Exit(1)
	}
	fmt.Println(render.OK("OK"), "dfsub and dgsub agree with finite differences")
	return nil
}

func reportSize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var degrees []int
	for _, part := range strings.Split(degreesArg, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("bad degree %q: %w", part, err)
		}
		degrees = append(degrees, d)
	}
	ncomp := len(degrees)
	mstar, maxDeg := 0, 0
	for _, d := range degrees {
		mstar += d
		if d > maxDeg {
			maxDeg = d
		}
	}

	k := colpoints
	if k == 0 {
		k = cfg.Size.CollocationPoints
	}
	if k == 0 {
		k = maxDeg + 1
	}
	m := maxMesh
	if m == 0 {
		m = cfg.Size.MaxMeshSize
	}

	ni, nf := colnew.WorkspaceSize(ncomp, mstar, k, m)

	fmt.Println(render.Title("kernel workspace"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "equations\t%d\n", ncomp)
	fmt.Fprintf(w, "unknowns (mstar)\t%d\n", mstar)
	fmt.Fprintf(w, "collocation points\t%d\n", k)
	fmt.Fprintf(w, "max mesh size\t%d\n", m)
	fmt.Fprintf(w, "integer workspace\t%d\n", ni)
	fmt.Fprintf(w, "float workspace\t%d\n", nf)
	if err := w.Flush(); err != nil {
		return err
	}

	if plotGrowth {
		sizes := make([]float64, 0, m)
		for mm := 10; mm <= m; mm += max(1, m/64) {
			_, f := colnew.WorkspaceSize(ncomp, mstar, k, mm)
			sizes = append(sizes, float64(f))
		}
		fmt.Println(render.Growth("float workspace vs mesh size", sizes, cfg.Plot.Width, cfg.Plot.Height))
	}
	return nil
}

func plotGuess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, err := problems.Get(args[0])
	if err != nil {
		return err
	}
	p := e.Build()

	guess, ok := p.InitialGuess.(colnew.GuessFunc)
	if !ok {
		return fmt.Errorf("problem %q carries no guess function", e.Name)
	}

	left, right := p.BoundaryPoints[0], p.BoundaryPoints[len(p.BoundaryPoints)-1]
	if p.Domain != nil {
		left, right = p.Domain[0], p.Domain[1]
	}

	n := cfg.Plot.Points
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = left + (right-left)*float64(i)/float64(n-1)
	}
	z, _ := guess(xs)

	comp := component
	if comp == 0 {
		comp = cfg.Plot.Component
	}
	if comp < 0 || comp >= len(z) {
		return fmt.Errorf("component %d out of range [0, %d)", comp, len(z))
	}

	fmt.Println(render.Title(fmt.Sprintf("initial guess: %s, z[%d]", e.Name, comp)))
	fmt.Println(render.Profile(e.Desc, xs, z[comp], cfg.Plot.Width, cfg.Plot.Height))

	out := svgOut
	if out == "" {
		out = cfg.Plot.SVG
	}
	if out != "" {
		svg := render.CurveSVG(xs, z[comp], 640, 360, "#00ff88")
		if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
			return err
		}
		fmt.Println(render.Note("wrote " + out))
	}
	return nil
}
