package remote

import (
	"fmt"
	"strconv"

	"github.com/go-redis/redis"
)

const DefaultRedisKey = "eit:lexicon"

type RedisConfig struct {
	Host string
	Port int
	// Key of the hash holding the lexicon.
	Key string
}

func NewRedisClient(conf RedisConfig) Client {
	key := conf.Key
	if key == "" {
		key = DefaultRedisKey
	}
	return &redisClient{
		Client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", conf.Host, conf.Port)}),
		key: key,
	}
}

type redisClient struct {
	*redis.Client
	key string
}

type redisSetPipeline struct {
	pipe redis.Pipeliner
	key  string
	cmds map[string]*redis.BoolCmd
}

func (r *redisClient) NewSetPipeline(size int) SetPipeline {
	return &redisSetPipeline{
		pipe: r.Pipeline(),
		key:  r.key,
		cmds: make(map[string]*redis.BoolCmd, size),
	}
}

func (r *redisClient) Ready() bool {
	return r.Ping().Err() == nil
}

func (r *redisClient) Exists() bool {
	n, err := r.Client.Exists(r.key).Result()
	return err == nil && n > 0
}

func (r *redisClient) Clear() error {
	return r.Del(r.key).Err()
}

func (r *redisClient) Scan(onEntry func(word string, rarity float64) error) error {
	values, err := r.HGetAll(r.key).Result()
	if err != nil {
		return err
	}
	for word, value := range values {
		rarity, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("redis field %q: %w", word, err)
		}
		if err := onEntry(word, rarity); err != nil {
			return err
		}
	}
	return nil
}

func (r *redisSetPipeline) Set(word string, rarity float64) {
	r.cmds[word] = r.pipe.HSet(r.key, word, strconv.FormatFloat(rarity, 'g', -1, 64))
}

func (r *redisSetPipeline) ExecSet() error {
	_, err := r.pipe.Exec()
	return err
}

func (r *redisSetPipeline) Size() int {
	return len(r.cmds)
}
