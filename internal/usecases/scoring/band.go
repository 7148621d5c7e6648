package scoring

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/commission-dashboard-api/internal/domain"
)

// Bands é uma tabela de comissão ordenada por threshold crescente
type Bands []domain.Band

// ParseBands interpreta uma string no formato "th1:rate1,th2:rate2,...".
// Entradas vazias, sem ':' ou com threshold/rate não numérico são descartadas em silêncio.
// Um lado vazio vale 0: "91:" é um degrau de taxa zero a partir de 91.
func ParseBands(raw string) Bands {
	bands := make(Bands, 0)
	if strings.TrimSpace(raw) == "" {
		return bands
	}

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		band, ok := parseBand(token)
		if !ok {
			continue
		}

		bands = append(bands, band)
	}

	sort.SliceStable(bands, func(i, j int) bool {
		return bands[i].Threshold < bands[j].Threshold
	})

	return bands
}

func parseBand(token string) (domain.Band, bool) {
	parts := strings.Split(token, ":")
	if len(parts) < 2 {
		return domain.Band{}, false
	}

	threshold, err := parseNumber(parts[0])
	if err != nil {
		return domain.Band{}, false
	}

	rate, err := parseNumber(parts[1])
	if err != nil {
		return domain.Band{}, false
	}

	return domain.Band{Threshold: threshold, Rate: rate}, true
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(n) {
		return 0, strconv.ErrSyntax
	}

	return n, nil
}

// Rate retorna a taxa do maior threshold <= score. Abaixo de todos os degraus a taxa é 0.
func (b Bands) Rate(score float64) float64 {
	rate := 0.0
	for _, band := range b {
		if score >= band.Threshold {
			rate = band.Rate
		}
	}

	return rate
}

// String devolve a tabela no mesmo formato aceito por ParseBands
func (b Bands) String() string {
	parts := make([]string, 0, len(b))
	for _, band := range b {
		parts = append(parts,
			strconv.FormatFloat(band.Threshold, 'f', -1, 64)+":"+strconv.FormatFloat(band.Rate, 'f', -1, 64))
	}

	return strings.Join(parts, ",")
}
