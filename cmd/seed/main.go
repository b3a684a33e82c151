// Command seed loads colleges, graduates and research entries from a JSON
// fixture into DynamoDB.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/campus-books-server/internal/config"
	"github.com/campus-books-server/internal/domain"
	"github.com/campus-books-server/internal/infrastructure/dynamo"
	"github.com/campus-books-server/internal/logging"
	"github.com/campus-books-server/internal/pkg/id"
	"github.com/joho/godotenv"
)

type fixture struct {
	Colleges  []domain.College  `json:"colleges"`
	Graduates []domain.Graduate `json:"graduates"`
	Research  []domain.Research `json:"research"`
}

func main() {
	path := flag.String("file", "seed.json", "path to the JSON fixture")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if err := run(context.Background(), cfg, *path); err != nil {
		slog.Error("seed failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fx, err := parseFixture(raw, time.Now().UTC())
	if err != nil {
		return err
	}

	client, err := dynamo.NewClient(ctx, cfg)
	if err != nil {
		return err
	}
	dynamo.Bootstrap(ctx, client, cfg.DynamoTables)

	if err := dynamo.NewCollegeRepo(client, cfg.DynamoTables.Colleges).PutMany(ctx, fx.Colleges); err != nil {
		return fmt.Errorf("colleges: %w", err)
	}
	if err := dynamo.NewGraduateRepo(client, cfg.DynamoTables.Graduates).PutMany(ctx, fx.Graduates); err != nil {
		return fmt.Errorf("graduates: %w", err)
	}
	if err := dynamo.NewResearchRepo(client, cfg.DynamoTables.Research).PutMany(ctx, fx.Research); err != nil {
		return fmt.Errorf("research: %w", err)
	}
	slog.Info("seed complete",
		"colleges", len(fx.Colleges),
		"graduates", len(fx.Graduates),
		"research", len(fx.Research),
	)
	return nil
}

// parseFixture decodes raw and fills in ids and timestamps. Graduates and
// research that name a college but carry no college_id are linked by name.
func parseFixture(raw []byte, now time.Time) (*fixture, error) {
	var fx fixture
	if err := json.Unmarshal(raw, &fx); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	byName := make(map[string]string, len(fx.Colleges))
	for i := range fx.Colleges {
		c := &fx.Colleges[i]
		if c.CollegeID == "" {
			c.CollegeID = id.New()
		} else if !id.Valid(c.CollegeID) {
			return nil, fmt.Errorf("college %q: malformed _id %q", c.Name, c.CollegeID)
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if c.Events == nil {
			c.Events = []string{}
		}
		if c.Sports == nil {
			c.Sports = []string{}
		}
		if c.Reviews == nil {
			c.Reviews = []domain.Review{}
		}
		byName[strings.ToLower(c.Name)] = c.CollegeID
	}
	for i := range fx.Graduates {
		g := &fx.Graduates[i]
		if g.GraduateID == "" {
			g.GraduateID = id.New()
		}
		if g.CollegeID == "" {
			g.CollegeID = byName[strings.ToLower(g.CollegeName)]
		}
	}
	for i := range fx.Research {
		r := &fx.Research[i]
		if r.ResearchID == "" {
			r.ResearchID = id.New()
		}
		if r.CollegeID == "" {
			r.CollegeID = byName[strings.ToLower(r.CollegeName)]
		}
	}
	return &fx, nil
}
