package service

import (
	"fmt"
	"strings"

	"github.com/jackeywu6810photo-bot/tohoku-trip/internal/domain"
)

// Keyword sets for the substring-matched categories. The lists are a fixed
// compatibility contract with the existing documents: matching is
// case-sensitive substring, no normalization, and the sets are not mutually
// exclusive — "山寺蕎麥麵" hits both attraction (山) and food (蕎麥), and
// that double count is intentional in the per-category views.
var (
	transportKeywords  = []string{"移動", "機場", "巴士", "JR", "新幹線", "電車", "車資", "計程車"}
	foodKeywords       = []string{"牛舌", "晚餐", "午餐", "早餐", "購物", "奶昔", "茶寮", "食", "飯", "拉麵", "蕎麥", "咖啡", "甜點"}
	attractionKeywords = []string{"神社", "寺", "館", "城", "園", "參拜", "門票", "體驗", "山", "公園", "纜車", "船", "展望台"}
)

// Categorize builds the budget report for one category from a snapshot of the
// trip record. Items keep day-then-stop iteration order and their original
// currency; Total is the sum converted to the trip's home currency.
//
// Category semantics:
//   - accommodation: one synthetic item per day with a real hotel (anything
//     but empty or the "無" sentinel) or a positive accommodation cost.
//   - transport / food / attraction: stops whose transport field is set
//     (transport only) or whose name contains a category keyword; only stops
//     with cost > 0 are listed.
//   - all: accommodation items plus every costed stop, keyword-free. It is a
//     superset view, not the sum of the other four.
//
// Unknown categories fail with domain.ErrValidation.
func Categorize(it domain.Itinerary, category domain.BudgetCategory) (domain.BudgetReport, error) {
	meta := resolveMeta(it.TripMeta)

	switch category {
	case domain.CategoryAll:
		report := domain.BudgetReport{
			Title:    fmt.Sprintf("消費總覽 (折合 %s)", meta.home),
			ColorTag: "bg-purple-600",
			Items:    []domain.BudgetItem{},
		}
		for _, day := range it.Days {
			if item, ok := accommodationItem(day, meta); ok {
				item.Note = "住宿"
				report.Items = append(report.Items, item)
				report.Total += convertToHome(item.Cost, item.Currency, meta)
			}
			for _, stop := range day.Stops {
				if stop.Cost <= 0 {
					continue
				}
				note := "行程"
				if stop.Transport != "" {
					note = "交通"
				}
				item := stopItem(day, stop, meta, note)
				report.Items = append(report.Items, item)
				report.Total += convertToHome(item.Cost, item.Currency, meta)
			}
		}
		return report, nil

	case domain.CategoryAccommodation:
		report := domain.BudgetReport{
			Title:    "住宿費用明細",
			ColorTag: "bg-sky-600",
			Items:    []domain.BudgetItem{},
		}
		for _, day := range it.Days {
			if item, ok := accommodationItem(day, meta); ok {
				item.Note = "預算"
				report.Items = append(report.Items, item)
				report.Total += convertToHome(item.Cost, item.Currency, meta)
			}
		}
		return report, nil

	case domain.CategoryTransport, domain.CategoryFood, domain.CategoryAttraction:
		report := domain.BudgetReport{Items: []domain.BudgetItem{}}
		var keywords []string
		switch category {
		case domain.CategoryTransport:
			report.Title, report.ColorTag = "交通移動明細", "bg-rose-600"
			keywords = transportKeywords
		case domain.CategoryFood:
			report.Title, report.ColorTag = "飲食與購物明細", "bg-emerald-600"
			keywords = foodKeywords
		case domain.CategoryAttraction:
			report.Title, report.ColorTag = "門票與體驗明細", "bg-orange-500"
			keywords = attractionKeywords
		}
		for _, day := range it.Days {
			for _, stop := range day.Stops {
				match := containsAny(stop.Name, keywords)
				if category == domain.CategoryTransport && stop.Transport != "" {
					match = true
				}
				if !match || stop.Cost <= 0 {
					continue
				}
				note := ""
				if stop.Transport != "" {
					note = "交通"
				}
				item := stopItem(day, stop, meta, note)
				report.Items = append(report.Items, item)
				report.Total += convertToHome(item.Cost, item.Currency, meta)
			}
		}
		return report, nil
	}

	return domain.BudgetReport{}, fmt.Errorf("%w: unknown budget category %q", domain.ErrValidation, category)
}

// accommodationItem builds the synthetic budget line for a day's lodging.
// A day qualifies when it names a real hotel or carries a positive cost;
// costed days without a hotel yet are listed under the placeholder name.
func accommodationItem(day domain.Day, meta domainMeta) (domain.BudgetItem, bool) {
	hasHotel := day.Accommodation != "" && day.Accommodation != domain.NoAccommodation
	if !hasHotel && day.AccommodationCost <= 0 {
		return domain.BudgetItem{}, false
	}
	name := day.Accommodation
	if name == "" {
		name = domain.PlaceholderHotel
	}
	currency := day.AccommodationCurrency
	if currency == "" {
		currency = meta.dest
	}
	return domain.BudgetItem{
		Date:     day.Date,
		Name:     name,
		Cost:     day.AccommodationCost,
		Currency: currency,
	}, true
}

// stopItem builds the budget line for a costed stop, applying the
// destination-currency default.
func stopItem(day domain.Day, stop domain.Stop, meta domainMeta, note string) domain.BudgetItem {
	currency := stop.Currency
	if currency == "" {
		currency = meta.dest
	}
	return domain.BudgetItem{
		Date:     day.Date,
		Name:     stop.Name,
		Cost:     stop.Cost,
		Currency: currency,
		Note:     note,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
