package mongotools

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/meowmatch/pkg/errors"
)

func ID(id string) bson.M {
	return bson.M{"_id": id}
}

func Field[T any](field string, value T) bson.M {
	return bson.M{field: value}
}

// NotIn builds {field: {$nin: values}}, or an empty filter for no values.
func NotIn[T any](field string, values []T) bson.M {
	if len(values) == 0 {
		return bson.M{}
	}
	return bson.M{field: bson.M{"$nin": values}}
}

func And(filters ...bson.M) bson.M {
	merged := make(bson.M)
	for _, f := range filters {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

func FilterFunc[T any](ctx context.Context, c *mongo.Cursor, filterFunc func(T) bool) ([]T, error) {
	defer c.Close(ctx)

	var filtered []T
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, c.Err()
}
