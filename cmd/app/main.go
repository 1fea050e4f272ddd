package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"warehouse-client/internal/adapters/repl"
	"warehouse-client/internal/app"
	"warehouse-client/internal/db"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	svc, err := app.NewAppService(pool)
	if err != nil {
		log.Fatalf("Unable to start application service: %v", err)
	}

	if len(os.Args) > 1 {
		if err := runCommand(ctx, svc, os.Args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}

// runCommand handles one-shot invocations: the same operations the REPL
// offers, suitable for scripting.
func runCommand(ctx context.Context, svc app.ApplicationService, args []string) error {
	switch args[0] {
	case "tables":
		for _, t := range svc.ManagedTables() {
			fmt.Println(t)
		}
		return nil

	case "list":
		if len(args) < 2 {
			return fmt.Errorf("usage: app list <table>")
		}
		result, err := svc.ListTable(ctx, args[1])
		if err != nil {
			return err
		}
		printResult(result.Columns, result.Rows)
		return nil

	case "report":
		if len(args) < 2 {
			return fmt.Errorf("usage: app report stock|profit|movement [filters]")
		}
		return runReport(ctx, svc, args[1:])

	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func runReport(ctx context.Context, svc app.ApplicationService, args []string) error {
	var result *app.ReportResult
	var err error

	switch args[0] {
	case "stock":
		warehouse := ""
		if len(args) > 1 {
			warehouse = args[1]
		}
		result, err = svc.StockReport(ctx, warehouse)
	case "profit":
		if len(args) < 3 {
			return fmt.Errorf("usage: app report profit <date-from> <date-to>")
		}
		result, err = svc.ProfitReport(ctx, args[1], args[2])
	case "movement":
		sku := ""
		if len(args) > 1 {
			sku = args[1]
		}
		result, err = svc.MovementReport(ctx, sku)
	default:
		return fmt.Errorf("unknown report: %s", args[0])
	}
	if err != nil {
		return err
	}
	printResult(result.Columns, result.Rows)
	return nil
}

// printResult emits tab-separated output for piping.
func printResult(columns []string, rows [][]any) {
	for i, c := range columns {
		if i > 0 {
			fmt.Print("\t")
		}
		fmt.Print(c)
	}
	fmt.Println()
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Print("\t")
			}
			if cell == nil {
				continue
			}
			fmt.Printf("%v", cell)
		}
		fmt.Println()
	}
}
