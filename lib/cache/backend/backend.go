// Package backend builds a lexicon cache client from config.
package backend

import (
	"fmt"

	"github.com/weit-project/eit-toolkit/lib/cache"
	"github.com/weit-project/eit-toolkit/lib/cache/local"
	"github.com/weit-project/eit-toolkit/lib/cache/remote"
)

// None disables caching.
const None cache.Type = "none"

type Config struct {
	Type          cache.Type
	Path          string
	PipelineSize  int `mapstructure:"pipeline_size"`
	Redis         remote.RedisConfig
	Elasticsearch remote.ElasticsearchConfig
}

// Defaults is the config map handed to lib.InitializeConfig under the "cache" key.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"type":          cache.File,
		"path":          "./lexicon/ZipfLexicon.msgpack",
		"pipeline_size": remote.DefaultBatchSize,
		"redis": map[string]interface{}{
			"host": "localhost",
			"port": 6379,
			"key":  remote.DefaultRedisKey,
		},
		"elasticsearch": map[string]interface{}{
			"host":  "localhost",
			"port":  9200,
			"index": remote.DefaultElasticsearchIndex,
		},
	}
}

// New returns nil without error when caching is disabled.
func New(conf Config) (cache.Client, error) {
	switch conf.Type {
	case None, "":
		return nil, nil
	case cache.File:
		if conf.Path == "" {
			return nil, fmt.Errorf("file cache needs a path")
		}
		return local.New(conf.Path), nil
	case cache.Redis:
		return remote.NewStore(remote.NewRedisClient(conf.Redis), conf.PipelineSize), nil
	case cache.Elasticsearch:
		client, err := remote.NewElasticsearchClient(conf.Elasticsearch)
		if err != nil {
			return nil, err
		}
		return remote.NewStore(client, conf.PipelineSize), nil
	default:
		return nil, fmt.Errorf("unsupported cache type %v", conf.Type)
	}
}
