package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"math"
	"strings"
	"text/template"
	"time"

	"crypto_compass_backend/internal/compass"
	"crypto_compass_backend/internal/model"
	"crypto_compass_backend/internal/util"
)

const (
	nftTitle     = "Busola Politică Crypto"
	nftChartSize = 440.0
)

type NFTAttribute struct {
	TraitType   string      `json:"trait_type"`
	Value       interface{} `json:"value"`
	DisplayType string      `json:"display_type,omitempty"`
}

// NFTMetadata follows the ERC-721 metadata JSON schema.
type NFTMetadata struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	ExternalURL string         `json:"external_url,omitempty"`
	Attributes  []NFTAttribute `json:"attributes"`
}

type svgData struct {
	Orientation string
	Archetype   string
	QuoteHead   string
	QuoteTail   string
	ShortHead   string
	ShortTail   string
	X, Y        float64
	Central     int
	Public      int
	Date        string
}

var svgTemplate = template.Must(template.New("nft").Funcs(template.FuncMap{
	"esc": html.EscapeString,
	"num": func(f float64) string { return fmt.Sprintf("%.1f", f) },
}).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="600" height="800" viewBox="0 0 600 800">
  <defs>
    <linearGradient id="cardBg" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#0f172a"/>
      <stop offset="50%" style="stop-color:#1e293b"/>
      <stop offset="100%" style="stop-color:#0f172a"/>
    </linearGradient>
    <linearGradient id="badge" x1="0%" y1="0%" x2="100%" y2="0%">
      <stop offset="0%" style="stop-color:#f97316"/>
      <stop offset="100%" style="stop-color:#9333ea"/>
    </linearGradient>
    <filter id="glow" x="-50%" y="-50%" width="200%" height="200%">
      <feGaussianBlur stdDeviation="3" result="blur"/>
      <feMerge><feMergeNode in="blur"/><feMergeNode in="SourceGraphic"/></feMerge>
    </filter>
  </defs>
  <rect x="16" y="16" width="568" height="768" rx="12" fill="url(#cardBg)" stroke="#22d3ee" stroke-width="2" stroke-opacity="0.3"/>
  <g transform="translate(48, 48)" font-family="Arial, sans-serif">
    <text x="256" y="40" text-anchor="middle" fill="#22d3ee" font-size="24" font-weight="bold">Busola Politică Crypto</text>
    <rect x="106" y="60" width="300" height="36" rx="18" fill="url(#badge)"/>
    <text x="256" y="82" text-anchor="middle" fill="white" font-size="14" font-weight="bold">{{esc .Orientation}}</text>
    <text x="256" y="120" text-anchor="middle" fill="#67e8f9" font-size="14" font-style="italic">
      <tspan x="256" y="120">"{{esc .QuoteHead}}</tspan>
      <tspan x="256" y="138">{{esc .QuoteTail}}"</tspan>
    </text>
    <text x="256" y="180" text-anchor="middle" fill="white" font-size="16" font-weight="600">{{esc .Archetype}}</text>
    <g transform="translate(36, 220)">
      <rect x="0" y="0" width="440" height="440" fill="#0f172a" fill-opacity="0.4" stroke="#9ca3af" stroke-opacity="0.3" stroke-width="2" rx="8"/>
      <rect x="0" y="0" width="220" height="220" fill="#1e3a8a" fill-opacity="0.08"/>
      <rect x="220" y="0" width="220" height="220" fill="#6366f1" fill-opacity="0.08"/>
      <rect x="0" y="220" width="220" height="220" fill="#475569" fill-opacity="0.08"/>
      <rect x="220" y="220" width="220" height="220" fill="#7c3aed" fill-opacity="0.08"/>
      <line x1="220" y1="0" x2="220" y2="440" stroke="#9ca3af" stroke-opacity="0.6" stroke-width="2"/>
      <line x1="0" y1="220" x2="440" y2="220" stroke="#9ca3af" stroke-opacity="0.6" stroke-width="2"/>
      <circle cx="{{num .X}}" cy="{{num .Y}}" r="14" fill="#f97316" filter="url(#glow)"/>
      <circle cx="{{num .X}}" cy="{{num .Y}}" r="8" fill="white"/>
      <circle cx="{{num .X}}" cy="{{num .Y}}" r="3" fill="#f97316"/>
      <text x="220" y="-5" text-anchor="middle" fill="#22d3ee" font-size="14" font-weight="bold">Bun Public</text>
      <text x="220" y="460" text-anchor="middle" fill="#22d3ee" font-size="14" font-weight="bold">Bun Privat</text>
      <text x="-30" y="225" text-anchor="middle" fill="#22d3ee" font-size="14" font-weight="bold" transform="rotate(-90, -30, 225)">Centralizat</text>
      <text x="470" y="225" text-anchor="middle" fill="#22d3ee" font-size="14" font-weight="bold" transform="rotate(90, 470, 225)">Descentralizat</text>
    </g>
    <text x="256" y="700" text-anchor="middle" fill="#d1d5db" font-size="14">
      <tspan x="256" y="700">{{esc .ShortHead}}</tspan>
      <tspan x="256" y="718">{{esc .ShortTail}}</tspan>
    </text>
    <text x="256" y="750" text-anchor="middle" fill="#6b7280" font-size="11">Centralizare: {{.Central}}% | Orientare Publică: {{.Public}}% | {{.Date}}</text>
  </g>
</svg>
`))

func jsRound(f float64) int {
	return int(math.Floor(f + 0.5))
}

func splitWords(s string, n int) (string, string) {
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.Join(words, " "), ""
	}
	return strings.Join(words[:n], " "), strings.Join(words[n:], " ")
}

func runeSlice(s string, from, to int) string {
	r := []rune(s)
	if from > len(r) {
		return ""
	}
	if to > len(r) {
		to = len(r)
	}
	return string(r[from:to])
}

// RenderNFTSVG draws the result card: orientation, archetype, quote and
// the marker on the compass chart.
func RenderNFTSVG(r *model.Result, now time.Time) ([]byte, error) {
	a := r.Archetype
	pos := compass.CompassPosition(r.Scores.Raw.Centralization, r.Scores.Raw.PrivatePublic, nftChartSize)

	d := svgData{
		Orientation: r.Orientation,
		Archetype:   a.Name,
		X:           pos.X,
		Y:           pos.Y,
		Central:     jsRound(r.Scores.Raw.Centralization),
		Public:      jsRound(r.Scores.Raw.PrivatePublic),
		Date:        now.Format("02.01.2006"),
	}
	if d.Orientation == "" {
		d.Orientation = "Orientare Necunoscută"
	}
	if d.Archetype == "" {
		d.Archetype = "Arhetip Necunoscut"
	}
	d.QuoteHead, d.QuoteTail = splitWords(a.NFTQuote, 4)
	if a.NFTQuote == "" {
		d.QuoteHead, d.QuoteTail = "Navighez către viitor", "prin tehnologie"
	}
	if a.ShortDescription != "" {
		d.ShortHead, d.ShortTail = runeSlice(a.ShortDescription, 0, 40), runeSlice(a.ShortDescription, 40, 80)
	} else {
		d.ShortHead, d.ShortTail = "Rezultatul meu unic în ecosistemul crypto", "generat prin testul "+nftTitle
	}

	var buf bytes.Buffer
	if err := svgTemplate.Execute(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func SVGDataURI(svg []byte) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)
}

// BuildNFTMetadata describes the token. tokenID may be empty before mint.
func BuildNFTMetadata(r *model.Result, svg []byte, tokenID, externalURL string, now time.Time) NFTMetadata {
	name := nftTitle
	if tokenID != "" {
		name += " #" + tokenID
	}
	archetypeName := r.Archetype.Name
	if archetypeName == "" {
		archetypeName = "Arhetip Necunoscut"
	}
	short := r.Archetype.ShortDescription
	if short == "" {
		short = "Un NFT unic care reflectă orientarea mea politică în ecosistemul cryptocurrency."
	}
	orientation := r.Orientation
	if orientation == "" {
		orientation = "Necunoscută"
	}

	return NFTMetadata{
		Name:        name,
		Description: fmt.Sprintf("Rezultatul meu în testul %s: %s. %s", nftTitle, archetypeName, short),
		Image:       SVGDataURI(svg),
		ExternalURL: externalURL,
		Attributes: []NFTAttribute{
			{TraitType: "Orientare Generală", Value: orientation},
			{TraitType: "Arhetip Specific", Value: archetypeName},
			{TraitType: "Scor Centralizare", Value: jsRound(r.Scores.Raw.Centralization), DisplayType: "number"},
			{TraitType: "Scor Orientare Publică", Value: jsRound(r.Scores.Raw.PrivatePublic), DisplayType: "number"},
			{TraitType: "Data Completării", Value: now.UTC().Format(util.DateFormat)},
		},
	}
}

// TokenURI encodes metadata as an on-chain data URI.
func TokenURI(m NFTMetadata) (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return "data:application/json;base64," + base64.StdEncoding.EncodeToString(data), nil
}
