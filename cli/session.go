package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"shopfront/checkout"
)

func init() {
	// login
	var email, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := identity.Login(ctx, email, password)
			if err != nil {
				return err
			}
			fmt.Printf("logged in as %s\n", u.Email)
			if p, ok := ledger.AddPendingItem(ctx); ok {
				fmt.Printf("added pending item to cart: %s\n", p.Name)
			}
			return nil
		},
	}
	loginCmd.Flags().StringVar(&email, "email", "", "email")
	loginCmd.Flags().StringVar(&password, "password", "", "password")
	rootCmd.AddCommand(loginCmd)

	// register
	var rEmail, rPassword, rFirst, rLast string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register and start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := identity.Register(ctx, rEmail, rPassword, rFirst, rLast)
			if err != nil {
				return err
			}
			fmt.Printf("registered %s\n", u.Email)
			if p, ok := ledger.AddPendingItem(ctx); ok {
				fmt.Printf("added pending item to cart: %s\n", p.Name)
			}
			return nil
		},
	}
	registerCmd.Flags().StringVar(&rEmail, "email", "", "email")
	registerCmd.Flags().StringVar(&rPassword, "password", "", "password")
	registerCmd.Flags().StringVar(&rFirst, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&rLast, "last-name", "", "last name")
	rootCmd.AddCommand(registerCmd)

	// logout
	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ledger.Clear(ctx)
			identity.Logout(ctx)
			fmt.Println("logged out")
			return nil
		},
	}
	rootCmd.AddCommand(logoutCmd)

	// whoami
	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, ok := identity.CurrentUser()
			if !ok {
				fmt.Println("not logged in")
				return nil
			}
			fmt.Printf("%s (%s)\n", u.FullName(), u.Email)
			return nil
		},
	}
	rootCmd.AddCommand(whoamiCmd)

	// cart
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the cart",
	}
	rootCmd.AddCommand(cartCmd)

	cartAddCmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %q", args[0])
			}
			p, err := products.ByID(id)
			if err != nil {
				return err
			}
			start := time.Now()
			if ledger.Add(context.Background(), p) {
				fmt.Println("login required: item saved, sign in to add it to your cart")
				return nil
			}
			slog.Info("cart add", "product_id", p.ID, "duration_ms", time.Since(start).Milliseconds())
			fmt.Printf("added %s (cart: %d items)\n", p.Name, ledger.Count())
			return nil
		},
	}
	cartCmd.AddCommand(cartAddCmd)

	cartRemoveCmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %q", args[0])
			}
			ledger.Remove(context.Background(), id)
			fmt.Printf("cart: %d items\n", ledger.Count())
			return nil
		},
	}
	cartCmd.AddCommand(cartRemoveCmd)

	cartUpdateCmd := &cobra.Command{
		Use:   "update <product-id> <quantity>",
		Short: "Set the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id must be a number: %q", args[0])
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be a number: %q", args[1])
			}
			ledger.UpdateQuantity(context.Background(), id, qty)
			fmt.Printf("cart: %d items\n", ledger.Count())
			return nil
		},
	}
	cartCmd.AddCommand(cartUpdateCmd)

	var cartOutput string
	cartShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := ledger.Lines()
			if cartOutput == "json" {
				b, _ := json.MarshalIndent(lines, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, l := range lines {
				fmt.Printf("%d | %s | %.2f x %d = %.2f\n",
					l.Product.ID, l.Product.Name, l.Product.Price, l.Quantity,
					l.Product.Price*float64(l.Quantity))
			}
			fmt.Printf("total: %.2f (%d items)\n", ledger.Total(), ledger.Count())
			return nil
		},
	}
	cartShowCmd.Flags().StringVar(&cartOutput, "output", "", "output format")
	cartCmd.AddCommand(cartShowCmd)

	cartClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			ledger.Clear(context.Background())
			fmt.Println("cart cleared")
			return nil
		},
	}
	cartCmd.AddCommand(cartClearCmd)

	// checkout
	var addr checkout.Address
	var promo string
	checkoutCmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			order, err := checkout.PlaceOrder(context.Background(), ledger, addr, promo)
			if err != nil {
				if errors.Is(err, checkout.ErrEmptyCart) {
					fmt.Println("cart is empty")
					return nil
				}
				return err
			}
			slog.Info("order placed",
				"order_number", order.Number,
				"total", order.Quote.Total.String(),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			b, _ := json.MarshalIndent(order, "", "  ")
			fmt.Println(string(b))
			return nil
		},
	}
	checkoutCmd.Flags().StringVar(&addr.FirstName, "first-name", "", "first name")
	checkoutCmd.Flags().StringVar(&addr.LastName, "last-name", "", "last name")
	checkoutCmd.Flags().StringVar(&addr.Email, "email", "", "email")
	checkoutCmd.Flags().StringVar(&addr.Phone, "phone", "", "phone (optional)")
	checkoutCmd.Flags().StringVar(&addr.Street, "address", "", "street address")
	checkoutCmd.Flags().StringVar(&addr.City, "city", "", "city")
	checkoutCmd.Flags().StringVar(&addr.State, "state", "", "state")
	checkoutCmd.Flags().StringVar(&addr.PinCode, "pin", "", "PIN code")
	checkoutCmd.Flags().StringVar(&addr.Country, "country", "India", "country")
	checkoutCmd.Flags().StringVar(&promo, "promo", "", "promo code")
	rootCmd.AddCommand(checkoutCmd)
}
