package remote

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/weit-project/eit-toolkit/lib/cache"
)

const (
	DefaultElasticsearchIndex = "eit-lexicon"
	scrollSize                = 1000
	scrollKeepAlive           = time.Minute
)

type ElasticsearchConfig struct {
	Host  string
	Port  int
	Index string
}

type esScrollResponse struct {
	ScrollID string `json:"_scroll_id"`
	Hits     struct {
		Hits []struct {
			ID     string      `json:"_id"`
			Source cache.Entry `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

type esBulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		Status int `json:"status"`
		Error  struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	} `json:"items"`
}

func NewElasticsearchClient(conf ElasticsearchConfig) (Client, error) {
	c, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{fmt.Sprintf("http://%s:%d", conf.Host, conf.Port)},
	})
	if err != nil {
		return nil, err
	}
	index := conf.Index
	if index == "" {
		index = DefaultElasticsearchIndex
	}
	return &esClient{
		Client: c,
		index:  index,
	}, nil
}

type esClient struct {
	*elasticsearch.Client
	index string
}

func (e *esClient) Ready() bool {
	res, err := e.Info()
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK
}

func (e *esClient) Exists() bool {
	res, err := e.Indices.Exists([]string{e.index})
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK
}

func (e *esClient) Clear() error {
	res, err := e.Indices.Delete([]string{e.index})
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return errors.New(res.String())
	}
	return nil
}

func (e *esClient) NewSetPipeline(size int) SetPipeline {
	return &esPipeline{
		esClient: e,
		buf:      bytes.NewBuffer(nil),
	}
}

func (e *esClient) Scan(onEntry func(word string, rarity float64) error) error {
	res, err := e.Search(
		e.Search.WithIndex(e.index),
		e.Search.WithScroll(scrollKeepAlive),
		e.Search.WithSize(scrollSize),
		e.Search.WithBody(strings.NewReader(`{"query":{"match_all":{}}}`)),
	)
	if err != nil {
		return err
	}

	var scrollID string
	defer func() {
		if scrollID != "" {
			if res, err := e.ClearScroll(e.ClearScroll.WithScrollID(scrollID)); err == nil {
				res.Body.Close()
			}
		}
	}()

	for {
		page, err := decodeScrollPage(res.Body, res.IsError(), res.String)
		if err != nil {
			return err
		}
		scrollID = page.ScrollID
		if len(page.Hits.Hits) == 0 {
			return nil
		}
		for _, hit := range page.Hits.Hits {
			word := hit.Source.Word
			if word == "" {
				word = hit.ID
			}
			if err := onEntry(word, hit.Source.Rarity); err != nil {
				return err
			}
		}

		res, err = e.Scroll(e.Scroll.WithScrollID(scrollID), e.Scroll.WithScroll(scrollKeepAlive))
		if err != nil {
			return err
		}
	}
}

func decodeScrollPage(body io.ReadCloser, isError bool, describe func() string) (*esScrollResponse, error) {
	defer body.Close()
	if isError {
		return nil, errors.New(describe())
	}
	var page esScrollResponse
	if err := json.NewDecoder(body).Decode(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

type esPipeline struct {
	*esClient
	buf  *bytes.Buffer
	size int
}

type esIndexAction struct {
	Index struct {
		ID string `json:"_id"`
	} `json:"index"`
}

func (p *esPipeline) Set(word string, rarity float64) {
	var action esIndexAction
	action.Index.ID = word
	meta, _ := json.Marshal(action)
	doc, _ := json.Marshal(cache.Entry{Word: word, Rarity: rarity})
	p.buf.Write(meta)
	p.buf.WriteByte('\n')
	p.buf.Write(doc)
	p.buf.WriteByte('\n')
	p.size++
}

func (p *esPipeline) ExecSet() error {
	res, err := p.Bulk(p.buf, p.Bulk.WithIndex(p.index), p.Bulk.WithRefresh("true"))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return errors.New(res.String())
	}

	var bulk esBulkResponse
	if err := json.NewDecoder(res.Body).Decode(&bulk); err != nil {
		return err
	}
	if bulk.Errors {
		for _, item := range bulk.Items {
			for _, result := range item {
				if result.Error.Type != "" {
					return fmt.Errorf("bulk index failed: %s: %s", result.Error.Type, result.Error.Reason)
				}
			}
		}
		return errors.New("bulk index failed")
	}
	return nil
}

func (p *esPipeline) Size() int {
	return p.size
}
