package translations

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a Korean rendering of a WordPress post, produced and stored by an
// external translation pipeline. WordpressID is a back-reference to the
// English post; the slug is the translation's own and may differ from the
// English one.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	WordpressID int                `bson:"wordpressId"`
	Slug        string             `bson:"slug"`
	Date        time.Time          `bson:"date"`
	Title       string             `bson:"translatedTitle"`
	Excerpt     string             `bson:"translatedExcerpt"`
	Content     string             `bson:"translatedContent"`
}
