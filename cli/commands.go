// Package cli provides the Cobra-based CLI for shopfront.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shopfront/auth"
	"shopfront/cart"
	"shopfront/catalog"
	"shopfront/domain"
	"shopfront/search"
	"shopfront/store"
)

var (
	rootCmd = &cobra.Command{
		Use:   "shopfront",
		Short: "A storefront demo: catalog search, cart and mock checkout",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject wired containers
			if stateStore != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			var err error
			stateStore, err = store.New(
				viper.GetString("storage"),
				viper.GetString("state-file"),
			)
			if err != nil {
				return err
			}

			if path := viper.GetString("catalog"); path != "" {
				products, err = catalog.LoadFile(path)
				if err != nil {
					return err
				}
			} else {
				products = catalog.Default()
			}

			ctx := context.Background()
			identity = auth.New(ctx, stateStore)
			engine = search.New(ctx, products, stateStore)
			ledger = cart.New(ctx, identity, stateStore)
			return nil
		},
	}

	stateStore domain.Storage
	products   *catalog.Catalog
	identity   *auth.Manager
	engine     *search.Engine
	ledger     *cart.Ledger
)

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(os.Stdin)
			for {
				fmt.Print("shopfront> ")
				line, err := r.ReadString('\n')
				if err != nil {
					return nil
				}
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				rootCmd.SetArgs(strings.Fields(line))
				if err := rootCmd.Execute(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
				rootCmd.SetArgs(nil)
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("storage", "file", "storage backend: memory|file|sqlite")
	rootCmd.PersistentFlags().String("state-file", "data/state.json", "session state location")
	rootCmd.PersistentFlags().String("catalog", "", "catalog file (JSON or YAML); built-in demo catalog when empty")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("storage", rootCmd.PersistentFlags().Lookup("storage"))
	viper.BindPFlag("state-file", rootCmd.PersistentFlags().Lookup("state-file"))
	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("SHOPFRONT")
	viper.AutomaticEnv()

	// search
	var sCategory, sBrand, sSort, sOutput string
	var sMinRating, sMinPrice, sMaxPrice float64
	var sInStock, sFastDelivery bool
	searchCmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) == 1 {
				term = args[0]
			}
			filters := domain.FilterSet{
				Category:     sCategory,
				Brand:        sBrand,
				MinRating:    sMinRating,
				MinPrice:     sMinPrice,
				MaxPrice:     sMaxPrice,
				InStock:      sInStock,
				FastDelivery: sFastDelivery,
				SortBy:       sSort,
			}
			results := engine.Search(context.Background(), term, filters)
			if sOutput == "json" {
				b, _ := json.MarshalIndent(results, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			printProducts(results)
			return nil
		},
	}
	searchCmd.Flags().StringVar(&sCategory, "category", "", "exact category")
	searchCmd.Flags().StringVar(&sBrand, "brand", "", "exact brand")
	searchCmd.Flags().Float64Var(&sMinRating, "min-rating", 0, "minimum rating")
	searchCmd.Flags().Float64Var(&sMinPrice, "min-price", 0, "minimum price")
	searchCmd.Flags().Float64Var(&sMaxPrice, "max-price", domain.MaxPriceBound, "maximum price")
	searchCmd.Flags().BoolVar(&sInStock, "in-stock", false, "only in-stock products")
	searchCmd.Flags().BoolVar(&sFastDelivery, "fast-delivery", false, "only fast-delivery products")
	searchCmd.Flags().StringVar(&sSort, "sort", domain.SortFeatured,
		"sort: featured|price-low|price-high|rating|newest|popularity|discount")
	searchCmd.Flags().StringVar(&sOutput, "output", "", "output format")
	rootCmd.AddCommand(searchCmd)

	// suggest
	suggestCmd := &cobra.Command{
		Use:   "suggest <term>",
		Short: "Show search suggestions for a partial term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range engine.GenerateSuggestions(args[0]) {
				fmt.Println(s)
			}
			return nil
		},
	}
	rootCmd.AddCommand(suggestCmd)

	// trending
	trendingCmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending search terms",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range engine.TrendingSearches() {
				fmt.Println(s)
			}
			return nil
		},
	}
	rootCmd.AddCommand(trendingCmd)

	// categories
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Show catalog categories by popularity",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range engine.PopularCategories() {
				fmt.Println(c)
			}
			return nil
		},
	}
	rootCmd.AddCommand(categoriesCmd)

	// recent
	var clearRecent bool
	recentCmd := &cobra.Command{
		Use:   "recent",
		Short: "Show or clear recent searches",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearRecent {
				engine.ClearRecent(context.Background())
				fmt.Println("recent searches cleared")
				return nil
			}
			for _, s := range engine.Recent() {
				fmt.Println(s)
			}
			return nil
		},
	}
	recentCmd.Flags().BoolVar(&clearRecent, "clear", false, "clear recent searches")
	rootCmd.AddCommand(recentCmd)
}

func printProducts(products []domain.Product) {
	for _, p := range products {
		stock := "in stock"
		if !p.InStock {
			stock = "out of stock"
		}
		fmt.Printf("%d | %s | %s | %s | %.2f | %.1f (%d reviews) | %s\n",
			p.ID, p.Name, p.Brand, p.Category, p.Price, p.Rating, p.Reviews, stock)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
