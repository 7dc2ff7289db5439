// A terminal frontend for the catalog: browse and filter the menu, manage
// the cart, and administer items over the HTTP API.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"foodiehaven/internal/client"
	"foodiehaven/internal/model"
	"foodiehaven/internal/ui"
)

func main() {
	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	in := bufio.NewScanner(os.Stdin)
	state := ui.NewState(client.New(baseURL))
	state.Alert = func(msg string) { fmt.Println("!", msg) }
	state.Confirm = func(msg string) bool {
		fmt.Print(msg + " (y/n): ")
		return in.Scan() && strings.EqualFold(strings.TrimSpace(in.Text()), "y")
	}

	ctx := context.Background()
	state.Load(ctx)
	fmt.Println("Foodie Haven — type 'help' for commands")
	printMenu(state)

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(in.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "", "list":
			printMenu(state)
		case "search":
			state.SetSearch(arg)
			printMenu(state)
		case "cat":
			if arg == "" {
				fmt.Println("categories:", strings.Join(model.Categories, ", "))
				continue
			}
			state.SetCategory(arg)
			printMenu(state)
		case "add":
			addToCart(state, arg)
		case "cart":
			state.ToggleCart()
			if state.ShowCart {
				printCart(state)
			}
		case "+", "-":
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Println("! usage:", cmd, "<id>")
				continue
			}
			delta := 1
			if cmd == "-" {
				delta = -1
			}
			state.Cart.UpdateQuantity(id, delta)
			printCart(state)
		case "rm":
			id, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Println("! usage: rm <id>")
				continue
			}
			state.Cart.Remove(id)
			printCart(state)
		case "checkout":
			// Visual affordance only; there is no backend effect.
			fmt.Printf("Checkout total: $%.2f — thanks for visiting!\n", state.Cart.Total())
		case "new":
			state.OpenCreate()
			fillDraft(in, state)
			state.Submit(ctx)
			printMenu(state)
		case "edit":
			editFood(ctx, in, state, arg)
		case "del":
			state.Delete(ctx, arg)
			printMenu(state)
		case "reload":
			state.Load(ctx)
			printMenu(state)
		case "help":
			printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Println("! unknown command, type 'help'")
		}
	}
}

func printMenu(s *ui.State) {
	if s.Loading {
		fmt.Println("loading...")
		return
	}
	if len(s.Filtered) == 0 {
		fmt.Println("No food items found")
		return
	}
	for _, f := range s.Filtered {
		stock := "In Stock"
		if !f.InStock {
			stock = "Out of Stock"
		}
		fmt.Printf("[%d] %s %s — $%.2f (%s, %s)\n    %s\n", f.ID, f.Image, f.Name, f.Price, f.Category, stock, f.Description)
	}
}

func printCart(s *ui.State) {
	lines := s.Cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Your cart is empty")
		return
	}
	for _, l := range lines {
		fmt.Printf("[%d] %s × %d — $%.2f\n", l.Food.ID, l.Food.Name, l.Quantity, l.Subtotal())
	}
	fmt.Printf("Total: $%.2f\n", s.Cart.Total())
}

func addToCart(s *ui.State, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Println("! usage: add <id>")
		return
	}
	for _, f := range s.Foods {
		if f.ID == id {
			if !s.AddToCart(f) {
				fmt.Println("!", f.Name, "is out of stock")
				return
			}
			fmt.Println("added", f.Name)
			return
		}
	}
	fmt.Println("! no such item")
}

func editFood(ctx context.Context, in *bufio.Scanner, s *ui.State, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Println("! usage: edit <id>")
		return
	}
	for _, f := range s.Foods {
		if f.ID == id {
			s.OpenEdit(f)
			fillDraft(in, s)
			s.Submit(ctx)
			printMenu(s)
			return
		}
	}
	fmt.Println("! no such item")
}

// fillDraft prompts for each field; empty input keeps the draft value.
func fillDraft(in *bufio.Scanner, s *ui.State) {
	d := &s.Draft.Input

	if v := prompt(in, "Name", d.Name); v != "" {
		d.Name = v
	}
	if v := prompt(in, "Category", d.Category); v != "" {
		d.Category = v
	}
	if v := prompt(in, "Price", strconv.FormatFloat(d.Price, 'f', 2, 64)); v != "" {
		// parsed as a float, same as the browser form
		d.Price, _ = strconv.ParseFloat(v, 64)
	}
	if v := prompt(in, "Description", d.Description); v != "" {
		d.Description = v
	}
	if v := prompt(in, "Emoji icon", d.Image); v != "" {
		d.Image = v
	}
	if v := prompt(in, "In stock (y/n)", ""); v != "" {
		inStock := strings.EqualFold(v, "y")
		d.InStock = &inStock
	}
}

func prompt(in *bufio.Scanner, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func printHelp() {
	fmt.Print(`commands:
  list               show the (filtered) menu
  search <text>      filter by name/category substring; 'search' clears
  cat <category>     filter by category; 'cat All' clears
  add <id>           add an item to the cart
  cart               toggle the cart panel
  + <id> / - <id>    change a cart line's quantity
  rm <id>            remove a cart line
  checkout           show the total
  new                create an item
  edit <id>          edit an item
  del <id>           delete an item (asks first)
  reload             re-fetch the catalog
  quit               leave
`)
}
