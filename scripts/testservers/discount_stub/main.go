package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jaguzmanb1/meliload/internal/catalog"
)

// stubServer mimics the discount endpoint meliload targets by default.
// With an items.json fixture it applies the real selection rule (maximum
// subset of items whose created..updated periods do not overlap); without
// one it echoes every requested identifier back.
type stubServer struct {
	items   map[string]itemRecord
	latency time.Duration
}

type itemRecord struct {
	DateCreated string `json:"date_created"`
	LastUpdated string `json:"last_updated"`
}

type idsResponse struct {
	ItemIDs []string `json:"item_ids"`
}

type interval struct {
	id    string
	start time.Time
	end   time.Time
}

func main() {
	port := flag.Int("port", 9090, "listening port")
	itemsPath := flag.String("items", "", "path to an items.json fixture (optional)")
	latency := flag.Duration("latency", 0, "artificial delay added to every response")
	flag.Parse()

	srv := &stubServer{latency: *latency}
	if *itemsPath != "" {
		items, err := loadItems(*itemsPath)
		if err != nil {
			log.Fatalf("load items fixture: %v", err)
		}
		srv.items = items
		log.Printf("loaded %d items from %s", len(items), *itemsPath)
	}

	e := echo.New()
	e.HideBanner = true
	e.GET("/meli_discount", srv.discountHandler)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("discount stub listening on %s", addr)
	e.Logger.Fatal(e.Start(addr))
}

func (s *stubServer) discountHandler(c echo.Context) error {
	idsParam := c.QueryParam("item_ids")
	if idsParam == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "You must provide at least one ID in the 'item_ids' query parameter",
		})
	}

	if s.latency > 0 {
		time.Sleep(s.latency)
	}

	selected := s.selectDiscounted(strings.Split(idsParam, ","))
	return c.JSON(http.StatusOK, idsResponse{ItemIDs: selected})
}

// selectDiscounted returns the maximum subset of the requested items whose
// active periods are pairwise non-overlapping (greedy by earliest end).
// Identifiers absent from the fixture are dropped.
func (s *stubServer) selectDiscounted(ids []string) []string {
	if s.items == nil {
		selected := make([]string, 0, len(ids))
		for _, raw := range ids {
			if id := strings.TrimSpace(raw); id != "" {
				selected = append(selected, id)
			}
		}
		return selected
	}

	intervals := make([]interval, 0, len(ids))
	for _, raw := range ids {
		id := strings.TrimSpace(raw)
		rec, ok := s.items[id]
		if !ok {
			continue
		}
		start, err := time.Parse(catalog.TimestampLayout, rec.DateCreated)
		if err != nil {
			continue
		}
		end, err := time.Parse(catalog.TimestampLayout, rec.LastUpdated)
		if err != nil {
			continue
		}
		intervals = append(intervals, interval{id: id, start: start, end: end})
	}

	sort.Slice(intervals, func(i, j int) bool { return intervals[i].end.Before(intervals[j].end) })

	selected := make([]string, 0, len(intervals))
	var lastEnd time.Time
	for _, iv := range intervals {
		if len(selected) == 0 || !lastEnd.After(iv.start) {
			selected = append(selected, iv.id)
			lastEnd = iv.end
		}
	}
	return selected
}

func loadItems(path string) (map[string]itemRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items map[string]itemRecord
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return items, nil
}
