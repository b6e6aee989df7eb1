package search

import (
	"strings"
	"unicode"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	bleveQuery "github.com/blevesearch/bleve/v2/search/query"

	"github.com/lexwire/lexwire/internal/newsapi"
)

// BleveEngine ranks articles with a token-based match query over an
// in-memory index. The index lives only as long as the loaded feed; it is
// rebuilt on every feed replacement and never written to disk.
type BleveEngine struct {
	idx  bleve.Index
	byID map[string]newsapi.Article
}

func NewBleveEngine() (*BleveEngine, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, err
	}
	return &BleveEngine{idx: idx, byID: map[string]newsapi.Article{}}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	im := bleve.NewIndexMapping()
	im.DefaultAnalyzer = standard.Name

	dm := bleve.NewDocumentMapping()

	title := bleve.NewTextFieldMapping()
	title.Analyzer = standard.Name
	title.Store = false
	title.IncludeTermVectors = true

	desc := bleve.NewTextFieldMapping()
	desc.Analyzer = standard.Name
	desc.Store = false

	tags := bleve.NewTextFieldMapping()
	tags.Analyzer = standard.Name
	tags.Store = false

	dm.AddFieldMappingsAt("title", title)
	dm.AddFieldMappingsAt("description", desc)
	dm.AddFieldMappingsAt("tags", tags)

	im.DefaultMapping = dm
	return im
}

// OnFeedReplaced rebuilds the in-memory index from the new feed.
func (b *BleveEngine) OnFeedReplaced(articles []newsapi.Article) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return
	}

	batch := idx.NewBatch()
	byID := make(map[string]newsapi.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
		_ = batch.Index(a.ID, map[string]any{
			"title":       a.Title,
			"description": a.Description,
			"tags":        strings.Join(a.Tags, " "),
		})
	}
	if err := idx.Batch(batch); err != nil {
		return
	}

	if b.idx != nil {
		_ = b.idx.Close()
	}
	b.idx = idx
	b.byID = byID
}

// Filter returns the matching articles in relevance order. An empty query
// returns the input unchanged.
func (b *BleveEngine) Filter(articles []newsapi.Article, query string) []newsapi.Article {
	if query == "" {
		return articles
	}

	tokens := tokenize(query)
	if len(tokens) == 0 {
		return articles
	}

	// OR of per-token matches with boosted title, plus prefix queries so
	// partial words match while typing
	var qs []bleveQuery.Query
	for _, tok := range tokens {
		qt := bleve.NewMatchQuery(tok)
		qt.SetField("title")
		qt.SetBoost(4.0)
		qs = append(qs, qt)
		qtp := bleve.NewPrefixQuery(tok)
		qtp.SetField("title")
		qtp.SetBoost(3.5)
		qs = append(qs, qtp)

		qd := bleve.NewMatchQuery(tok)
		qd.SetField("description")
		qd.SetBoost(2.0)
		qs = append(qs, qd)
		qdp := bleve.NewPrefixQuery(tok)
		qdp.SetField("description")
		qdp.SetBoost(1.8)
		qs = append(qs, qdp)

		qg := bleve.NewMatchQuery(tok)
		qg.SetField("tags")
		qg.SetBoost(1.0)
		qs = append(qs, qg)
	}

	q := bleve.NewDisjunctionQuery(qs...)
	req := bleve.NewSearchRequestOptions(q, len(articles), 0, false)
	res, err := b.idx.Search(req)
	if err != nil {
		return []newsapi.Article{}
	}

	out := make([]newsapi.Article, 0, len(res.Hits))
	for _, h := range res.Hits {
		if a, ok := b.byID[h.ID]; ok {
			out = append(out, a)
		}
	}
	return out
}

func tokenize(text string) []string {
	var terms []string
	current := strings.Builder{}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			current.WriteRune(unicode.ToLower(r))
		} else if current.Len() > 0 {
			terms = append(terms, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		terms = append(terms, current.String())
	}

	return terms
}
