package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"sciquest-service/internal/app"
	"sciquest-service/internal/domain"
)

// QuizCache is a read-through cache over a QuizStore. Quiz metadata and
// question sets are cached as JSON blobs; attempts are write-path data and
// always pass through to the backing store.
//
// Keys:
//
//	quiz:{quizID}            quiz row
//	quiz:{quizID}:questions  ordered question set (answer key included)
//	quiz:exp:{experimentID}  quiz row keyed by its experiment
type QuizCache struct {
	client *redis.Client
	store  app.QuizStore
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewQuizCache(client *redis.Client, store app.QuizStore, ttl time.Duration) *QuizCache {
	return &QuizCache{
		client: client,
		store:  store,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *QuizCache) QuizByID(ctx context.Context, id int64) (domain.Quiz, error) {
	key := quizKey(id)
	var cached domain.Quiz
	if ok := c.get(ctx, key, &cached); ok {
		return cached, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		var quiz domain.Quiz
		if ok := c.get(ctx, key, &quiz); ok {
			return quiz, nil
		}
		quiz, err := c.store.QuizByID(ctx, id)
		if err != nil {
			return domain.Quiz{}, err
		}
		c.set(ctx, key, quiz)
		return quiz, nil
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return result.(domain.Quiz), nil
}

func (c *QuizCache) QuizByExperiment(ctx context.Context, experimentID int64) (*domain.Quiz, error) {
	key := experimentQuizKey(experimentID)
	var cached domain.Quiz
	if ok := c.get(ctx, key, &cached); ok {
		return &cached, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		var quiz domain.Quiz
		if ok := c.get(ctx, key, &quiz); ok {
			return &quiz, nil
		}
		found, err := c.store.QuizByExperiment(ctx, experimentID)
		if err != nil || found == nil {
			// Absence is not cached; experiments without a quiz are rare
			// enough that the extra store read is fine.
			return found, err
		}
		c.set(ctx, key, *found)
		return found, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.Quiz), nil
}

func (c *QuizCache) QuestionsByQuiz(ctx context.Context, quizID int64) ([]domain.QuizQuestion, error) {
	key := questionsKey(quizID)
	var cached []domain.QuizQuestion
	if ok := c.get(ctx, key, &cached); ok {
		return cached, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		var questions []domain.QuizQuestion
		if ok := c.get(ctx, key, &questions); ok {
			return questions, nil
		}
		questions, err := c.store.QuestionsByQuiz(ctx, quizID)
		if err != nil {
			return nil, err
		}
		c.set(ctx, key, questions)
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.QuizQuestion), nil
}

func (c *QuizCache) InsertAttempt(ctx context.Context, attempt domain.QuizAttempt) (domain.QuizAttempt, error) {
	return c.store.InsertAttempt(ctx, attempt)
}

func (c *QuizCache) AttemptsByUser(ctx context.Context, userID string, quizID int64) ([]domain.QuizAttempt, error) {
	return c.store.AttemptsByUser(ctx, userID, quizID)
}

func (c *QuizCache) get(ctx context.Context, key string, dest interface{}) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// set is best-effort; a failed cache write never fails the read.
func (c *QuizCache) set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key, raw, c.ttlWithJitter()).Err()
}

func (c *QuizCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}

func quizKey(quizID int64) string {
	return "quiz:" + strconv.FormatInt(quizID, 10)
}

func questionsKey(quizID int64) string {
	return "quiz:" + strconv.FormatInt(quizID, 10) + ":questions"
}

func experimentQuizKey(experimentID int64) string {
	return "quiz:exp:" + strconv.FormatInt(experimentID, 10)
}
