package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/hops/internal/config"
	"github.com/san-kum/hops/internal/hierarchy"
	"github.com/san-kum/hops/internal/operators"
	"github.com/san-kum/hops/internal/storage"
	"github.com/san-kum/hops/internal/tensornet"
	"github.com/san-kum/hops/internal/viz"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var (
	dataDir        string
	numIterLanczos int
	maxBondDim     int
	svdTolerance   float64
	configFile     string
	preset         string
	saveParams     bool
	dimension      int
	plotOperator   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hops",
		Short: "HOPS tensor-network parameter and operator toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hops", "data directory")

	paramsCmd := &cobra.Command{
		Use:   "params [mode]",
		Short: "generate integration parameters",
		Args:  cobra.ExactArgs(1),
		RunE:  generateParams,
	}
	paramsCmd.Flags().IntVar(&numIterLanczos, "numiter-lanczos", config.DefaultNumIterLanczos, "Lanczos iterations")
	paramsCmd.Flags().IntVar(&maxBondDim, "bond-dim", config.DefaultMaxBondDimension, "maximum bond dimension")
	paramsCmd.Flags().Float64Var(&svdTolerance, "svd-tol", config.DefaultSVDRelativeTolerance, "SVD relative tolerance")
	paramsCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	paramsCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	paramsCmd.Flags().BoolVar(&saveParams, "save", false, "save parameter set to the data directory")

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "list integration modes",
		RunE:  listModes,
	}

	operatorsCmd := &cobra.Command{
		Use:   "operators [name]",
		Short: "print an operator matrix (creation, annihilation, number, identity, pauli)",
		Args:  cobra.ExactArgs(1),
		RunE:  printOperator,
	}
	operatorsCmd.Flags().IntVar(&dimension, "dim", 4, "operator dimension")
	operatorsCmd.Flags().BoolVar(&plotOperator, "plot", false, "plot ladder couplings")

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list available presets for a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for mode: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved parameter sets",
		RunE:  listParamSets,
	}

	exportCmd := &cobra.Command{
		Use:   "export [key]",
		Short: "export a saved parameter set as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportParamSet,
	}

	rootCmd.AddCommand(paramsCmd, modesCmd, operatorsCmd, presetsCmd, listCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateParams(cmd *cobra.Command, args []string) error {
	mode := args[0]

	cfg := config.DefaultConfig()
	cfg.Mode = mode
	cfg.Integration.NumIterLanczos = numIterLanczos
	cfg.Integration.MaxBondDimension = maxBondDim
	cfg.Integration.SVDRelativeTolerance = svdTolerance

	if preset != "" {
		p := config.GetPreset(mode, preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mode))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	params, err := cfg.GenerateParameters()
	if err != nil {
		return err
	}

	fmt.Println(viz.Title.Render("integration parameters"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "mode\t%s\n", params.Mode())
	for name, value := range cfg.GetFields() {
		fmt.Fprintf(w, "%s\t%v\n", name, value)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	base, err := hierarchy.New(cfg.HierarchyValues())
	if err != nil {
		return err
	}
	composite, err := hierarchy.NewWithTensors(base, params)
	if err != nil {
		return err
	}
	key, err := composite.Key()
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", viz.Label.Render("cache key"), viz.Value.Render(key))

	if saveParams {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		key, err := store.Save(params)
		if err != nil {
			return err
		}
		fmt.Printf("saved: %s\n", viz.Value.Render(key))
	}

	return nil
}

func listModes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, m := range tensornet.Modes() {
		status := viz.StatusOK.Render("available")
		if m == tensornet.ModeRungeKutta {
			status = viz.StatusReserved.Render("reserved")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m, describeMode(m), status)
	}
	return w.Flush()
}

func describeMode(m tensornet.IntegrationMode) string {
	switch m {
	case tensornet.ModeTDVP1Site:
		return "single-site time-dependent variational principle"
	case tensornet.ModeTDVP2Site:
		return "two-site time-dependent variational principle"
	case tensornet.ModeTEBD:
		return "time-evolving block decimation"
	case tensornet.ModeRungeKutta:
		return "direct Runge-Kutta integration"
	default:
		return ""
	}
}

func printOperator(cmd *cobra.Command, args []string) error {
	name := args[0]

	if plotOperator {
		return plotLadderCouplings(dimension)
	}

	switch name {
	case "creation", "annihilation":
		creation, annihilation, err := operators.CreationAnnihilation(dimension)
		if err != nil {
			return err
		}
		m := creation
		if name == "annihilation" {
			m = annihilation
		}
		printDense(name, m)
	case "number":
		n, err := operators.Number(dimension)
		if err != nil {
			return err
		}
		printDense(name, n)
	case "identity":
		id, err := operators.Identity(dimension)
		if err != nil {
			return err
		}
		printDense(name, id)
	case "pauli":
		sx, sy, sz := operators.Pauli()
		printCDense("sigma_x", sx)
		printCDense("sigma_y", sy)
		printCDense("sigma_z", sz)
	default:
		return fmt.Errorf("unknown operator: %s", name)
	}
	return nil
}

func printDense(name string, m *mat.Dense) {
	fmt.Println(viz.Title.Render(name))
	fmt.Printf("%v\n", mat.Formatted(m, mat.Squeeze()))
}

func printCDense(name string, m *mat.CDense) {
	fmt.Println(viz.Title.Render(name))
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			fmt.Printf("(%+.0f%+.0fi) ", real(v), imag(v))
		}
		fmt.Println()
	}
}

func plotLadderCouplings(dim int) error {
	if dim < 1 {
		return operators.ErrNonPositiveDimension
	}
	couplings := make([]float64, dim)
	for i := 1; i < dim; i++ {
		couplings[i] = math.Sqrt(float64(i))
	}
	fmt.Println(viz.Subtle.Render("ladder coupling strengths sqrt(n)"))
	fmt.Println(asciigraph.Plot(couplings, asciigraph.Height(10), asciigraph.Caption(fmt.Sprintf("dimension %d", dim))))
	return nil
}

func listParamSets(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	sets, err := store.List()
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		fmt.Println("no saved parameter sets")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tMODE\tCREATED")
	for _, s := range sets {
		fmt.Fprintf(w, "%.12s\t%s\t%s\n", s.Key, s.Mode, s.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func exportParamSet(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	meta, err := store.Load(args[0])
	if err != nil {
		return err
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
