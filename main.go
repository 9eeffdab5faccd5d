package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/luach/luach/internal/app"
	"github.com/luach/luach/internal/config"
	"github.com/luach/luach/internal/utils"
	"github.com/luach/luach/pkg/client"
	"github.com/luach/luach/pkg/view"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	cliApp := &cli.App{
		Name:  "luach",
		Usage: "A single-user weekly calendar.",
		Commands: []*cli.Command{
			serveCommand(),
			viewCommand(),
			weekCommand(),
			addCommand(),
			deleteCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the calendar API server.",
		Action: func(c *cli.Context) error {
			application, err := app.NewApplication()
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			return application.Run()
		},
	}
}

func clientFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "api", Usage: "API base URL (overrides config)"},
		&cli.StringFlag{Name: "date", Usage: "Selected date (YYYY-MM-DD). Defaults to today."},
	}
}

// newWeekView builds a loaded week view from the command's flags.
func newWeekView(c *cli.Context) (*view.WeekView, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	baseURL := c.String("api")
	if baseURL == "" {
		baseURL = cfg.Client.BaseURL
	}

	var clock utils.Clock = utils.SystemClock{}
	if dateString := c.String("date"); dateString != "" {
		date, err := time.ParseInLocation("2006-01-02", dateString, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", dateString, err)
		}
		clock = &utils.MockClock{FixedNow: date}
	}

	prompter := view.NewStdioPrompter(os.Stdin, os.Stdout)
	v := view.NewWeekView(client.NewClient(baseURL), clock, prompter)
	v.Load(c.Context)
	return v, nil
}

func weekCommand() *cli.Command {
	return &cli.Command{
		Name:  "week",
		Usage: "Print the week view for a date.",
		Flags: clientFlags(),
		Action: func(c *cli.Context) error {
			v, err := newWeekView(c)
			if err != nil {
				return err
			}
			v.Render(os.Stdout)
			return nil
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Add an event to the selected date (prompts for title and times).",
		Flags: clientFlags(),
		Action: func(c *cli.Context) error {
			v, err := newWeekView(c)
			if err != nil {
				return err
			}
			v.AddEvent(c.Context)
			v.Render(os.Stdout)
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an event by id (asks for confirmation).",
		ArgsUsage: "<id>",
		Flags:     clientFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one event id")
			}
			id, err := strconv.ParseInt(c.Args().First(), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event id %q: %w", c.Args().First(), err)
			}

			v, err := newWeekView(c)
			if err != nil {
				return err
			}
			v.DeleteEvent(c.Context, id)
			v.Render(os.Stdout)
			return nil
		},
	}
}

func viewCommand() *cli.Command {
	return &cli.Command{
		Name:  "view",
		Usage: "Interactive week view.",
		Flags: clientFlags(),
		Action: func(c *cli.Context) error {
			v, err := newWeekView(c)
			if err != nil {
				return err
			}

			reader := bufio.NewReader(os.Stdin)
			for {
				fmt.Println()
				v.Render(os.Stdout)
				fmt.Print("\n[n]ext [p]rev [a]dd [d]elete <id> [r]eload [q]uit > ")

				line, err := reader.ReadString('\n')
				if err != nil {
					return nil
				}
				fields := strings.Fields(line)
				if len(fields) == 0 {
					continue
				}

				switch fields[0] {
				case "n", "next":
					v.NextWeek()
				case "p", "prev":
					v.PreviousWeek()
				case "a", "add":
					v.AddEvent(c.Context)
				case "d", "delete":
					if len(fields) < 2 {
						fmt.Println("usage: d <id>")
						continue
					}
					id, err := strconv.ParseInt(fields[1], 10, 64)
					if err != nil {
						fmt.Printf("invalid event id %q\n", fields[1])
						continue
					}
					v.DeleteEvent(c.Context, id)
				case "r", "reload":
					v.Load(c.Context)
				case "q", "quit":
					return nil
				default:
					fmt.Printf("unknown command %q\n", fields[0])
				}
			}
		},
	}
}
