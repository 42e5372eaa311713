package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/storekit/storefront"
	"github.com/storekit/storefront/pkg/catalog"
	"github.com/storekit/storefront/pkg/constants"
	"github.com/storekit/storefront/pkg/logging"
	"github.com/storekit/storefront/pkg/products"
	"github.com/storekit/storefront/pkg/storage"
)

var (
	configFile string

	// shop is the process-wide state container, built once in setupCommand
	// and shared by every subcommand.
	shop storefront.Storefront

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront demo CLI",
	Long: `Storefront is a demo shop backed by mock catalog data.

Browse and filter the product catalog, and manage a cart, wishlist, and
product comparison. Cart and comparison state persist under the data
directory, so they survive between invocations; the wishlist resets each
run.`,
	PersistentPreRunE: setupCommand,
}

// Execute adds all child commands to the root command and runs it.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
	rootCmd.Version = version

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $HOME/.storefront.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for durable cart/compare state (default $HOME/"+constants.DefaultDataDirName+")")
	rootCmd.PersistentFlags().Duration("latency", 0, "simulated catalog latency per call")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")

	_ = viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("latency", rootCmd.PersistentFlags().Lookup("latency"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads configuration from .env files, the environment, and an
// optional config file, in the usual precedence order below flags.
func initConfig() {
	// Load .env before viper binds the environment.
	_ = godotenv.Load()

	viper.SetEnvPrefix("STOREFRONT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".storefront")
	}

	// Missing config files are fine.
	if err := viper.ReadInConfig(); err == nil {
		logging.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config file")
	}
}

// setupCommand builds the shared state container before any subcommand runs.
func setupCommand(cmd *cobra.Command, _ []string) error {
	zerolog.SetGlobalLevel(logging.ParseLevel(viper.GetString("log_level")))

	dataDir := viper.GetString("data_dir")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		dataDir = filepath.Join(home, constants.DefaultDataDirName)
	}

	latency := viper.GetDuration("latency")

	sf, err := storefront.New(
		storefront.WithStorage(storage.NewFile(dataDir)),
		storefront.WithCatalogOptions(catalog.WithLatency(latency)),
	)
	if err != nil {
		return err
	}
	shop = sf

	logging.Debug().
		Str("data_dir", dataDir).
		Dur("latency", latency).
		Msg("storefront ready")
	return nil
}

// lookupProduct fetches one product by ID for the mutation subcommands.
func lookupProduct(ctx context.Context, id int) (products.Product, error) {
	p, ok, err := shop.Catalog().Product(ctx, id)
	if err != nil {
		return products.Product{}, err
	}
	if !ok {
		return products.Product{}, fmt.Errorf("product %d not found", id)
	}
	return p, nil
}
