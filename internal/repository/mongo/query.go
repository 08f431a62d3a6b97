package mongo

import (
	"regexp"

	repo "github.com/baharkarakas/farm-market/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var noMongoID = bson.M{"_id": 0}

// containsFold matches s anywhere in the field, ignoring case. s is literal
// text, not a pattern.
func containsFold(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

func cropFilter(f repo.CropFilter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.FarmerID != "" {
		q["farmer_id"] = f.FarmerID
	}
	if f.CropType != "" {
		q["crop_type"] = containsFold(f.CropType)
	}
	if f.Location != "" {
		q["farmer_location"] = containsFold(f.Location)
	}
	return q
}

func newestFirst(limit int) *options.FindOptions {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(noMongoID)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return opts
}
