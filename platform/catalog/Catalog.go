package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/DedS3t/cashflow-backend/app/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed data/*.json
var data embed.FS

type Pool string

const (
	SmallDeal Pool = "smallDeal"
	BigDeal   Pool = "bigDeal"
	Doodad    Pool = "doodad"
	Offer     Pool = "offer"
)

// Pools lists the card pools in deck-building order.
var Pools = []Pool{SmallDeal, BigDeal, Doodad, Offer}

var poolTypes = map[Pool]models.CardType{
	SmallDeal: models.CardSmallDeal,
	BigDeal:   models.CardBigDeal,
	Doodad:    models.CardDoodad,
	Offer:     models.CardOffer,
}

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrDreamNotFound = errors.New("dream not found")
)

// Catalog is read-only reference data. Nothing mutates it after Load.
type Catalog struct {
	pools  map[Pool][]models.CardData
	byId   map[string]models.CardData
	cards  map[string]models.Card
	jobs   []models.Job
	dreams []models.Dream
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded data, loading it on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load()
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func Load() (*Catalog, error) {
	var pools map[Pool][]models.CardData
	if err := readJSON("data/cards.json", &pools); err != nil {
		return nil, err
	}
	var jobs []models.Job
	if err := readJSON("data/jobs.json", &jobs); err != nil {
		return nil, err
	}
	var dreams []models.Dream
	if err := readJSON("data/dreams.json", &dreams); err != nil {
		return nil, err
	}
	return New(pools, jobs, dreams), nil
}

func New(pools map[Pool][]models.CardData, jobs []models.Job, dreams []models.Dream) *Catalog {
	c := &Catalog{
		pools:  make(map[Pool][]models.CardData, len(pools)),
		byId:   make(map[string]models.CardData),
		cards:  make(map[string]models.Card),
		jobs:   append([]models.Job(nil), jobs...),
		dreams: append([]models.Dream(nil), dreams...),
	}
	for _, pool := range Pools {
		entries := append([]models.CardData(nil), pools[pool]...)
		c.pools[pool] = entries
		for _, e := range entries {
			c.byId[e.Id] = e
			if _, ok := c.cards[e.Id]; !ok {
				c.cards[e.Id] = e.ToCard(poolTypes[pool])
			}
		}
	}
	return c
}

func readJSON(name string, v interface{}) error {
	raw, err := data.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Entries returns a copy of one pool in catalog order.
func (c *Catalog) Entries(pool Pool) []models.CardData {
	return append([]models.CardData(nil), c.pools[pool]...)
}

// RandomEntry picks uniformly from a pool. ok is false only for an empty or unknown pool.
func (c *Catalog) RandomEntry(pool Pool, r *rand.Rand) (models.CardData, bool) {
	entries := c.pools[pool]
	if len(entries) == 0 {
		return models.CardData{}, false
	}
	return entries[r.IntN(len(entries))], true
}

func (c *Catalog) CardById(id string) (models.CardData, bool) {
	card, ok := c.byId[id]
	return card, ok
}

// AffordableCards keeps the pool entries costing at most cash, in catalog order.
func (c *Catalog) AffordableCards(pool Pool, cash int) []models.CardData {
	var out []models.CardData
	for _, e := range c.pools[pool] {
		if e.Cost <= cash {
			out = append(out, e)
		}
	}
	return out
}

// Cards flattens every pool into live cards tagged with their pool's type.
func (c *Catalog) Cards() []models.Card {
	var cards []models.Card
	for _, pool := range Pools {
		for _, e := range c.pools[pool] {
			cards = append(cards, e.ToCard(poolTypes[pool]))
		}
	}
	return cards
}

// Card builds the live card for a catalog id.
func (c *Catalog) Card(id string) (models.Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

func PoolType(pool Pool) (models.CardType, bool) {
	t, ok := poolTypes[pool]
	return t, ok
}

func (c *Catalog) Dreams() []models.Dream {
	return append([]models.Dream(nil), c.dreams...)
}

func (c *Catalog) DreamById(id string) (models.Dream, error) {
	for _, d := range c.dreams {
		if d.Id == id {
			return d, nil
		}
	}
	return models.Dream{}, fmt.Errorf("%w: %s", ErrDreamNotFound, id)
}

func (c *Catalog) RandomDream(r *rand.Rand) (models.Dream, bool) {
	if len(c.dreams) == 0 {
		return models.Dream{}, false
	}
	return c.dreams[r.IntN(len(c.dreams))], true
}

func (c *Catalog) AffordableDreams(cash int) []models.Dream {
	var out []models.Dream
	for _, d := range c.dreams {
		if d.Cost <= cash {
			out = append(out, d)
		}
	}
	return out
}

func (c *Catalog) DreamNames() []string {
	names := make([]string, 0, len(c.dreams))
	for _, d := range c.dreams {
		names = append(names, d.Name)
	}
	return names
}

func (c *Catalog) Jobs() []models.Job {
	return append([]models.Job(nil), c.jobs...)
}

func (c *Catalog) JobById(id string) (models.Job, error) {
	for _, j := range c.jobs {
		if j.Id == id {
			return j, nil
		}
	}
	return models.Job{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
}

func (c *Catalog) RandomJobId(r *rand.Rand) string {
	if len(c.jobs) == 0 {
		return ""
	}
	return c.jobs[r.IntN(len(c.jobs))].Id
}

var printer = message.NewPrinter(language.English)

// DisplayName renders a job the way the job picker lists it, e.g. "Airline Pilot: $9,500".
func DisplayName(job models.Job) string {
	return printer.Sprintf("%s: $%d", job.Name, job.Salary)
}

func (c *Catalog) JobDisplayNames() []string {
	names := []string{"Random Job"}
	for _, j := range c.jobs {
		names = append(names, DisplayName(j))
	}
	return names
}

// JobByDisplayName matches on the part before the colon.
func (c *Catalog) JobByDisplayName(displayName string) (models.Job, error) {
	name := strings.TrimSpace(strings.SplitN(displayName, ":", 2)[0])
	for _, j := range c.jobs {
		if j.Name == name {
			return j, nil
		}
	}
	return models.Job{}, fmt.Errorf("%w: %s", ErrJobNotFound, displayName)
}

// NewPlayerSetup fills the financial part of a player's setup from its job.
func (c *Catalog) NewPlayerSetup(name, color, jobId string, insurance bool) (models.PlayerSetup, error) {
	job, err := c.JobById(jobId)
	if err != nil {
		return models.PlayerSetup{}, err
	}
	return models.PlayerSetup{
		Name:      name,
		Color:     color,
		Job:       job.Id,
		Insurance: insurance,
		Salary:    job.Salary,
		Expenses:  job.TotalExpenses,
		Savings:   job.Savings,
	}, nil
}
