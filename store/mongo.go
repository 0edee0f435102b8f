package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"hackportal-backend/entity"
	"hackportal-backend/errs"
	"hackportal-backend/log"
)

// Collection names follow the documents the registration site already writes.
const (
	TeamsCollection       = "teamregistrations"
	CredentialsCollection = "authcredentials"
	SubmissionsCollection = "submissions"
)

// NewMongo creates the unique indexes the stores rely on and returns a Store
// backed by the given database.
func NewMongo(ctx context.Context, client *mongo.Client, database string) (*Store, error) {
	db := client.Database(database)

	indexes := []struct {
		collection string
		key        string
	}{
		{TeamsCollection, "team_name"},
		{CredentialsCollection, "username"},
		{SubmissionsCollection, "team_id"},
	}
	for _, v := range indexes {
		_, err := db.Collection(v.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: v.key, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			log.Logger.Error("unable to create index", zap.String("collection", v.collection), zap.Error(err))
			return nil, err
		}
	}

	return &Store{
		Credentials: &mongoCredentials{c: db.Collection(CredentialsCollection)},
		Teams:       &mongoTeams{c: db.Collection(TeamsCollection)},
		Submissions: &mongoSubmissions{c: db.Collection(SubmissionsCollection)},
	}, nil
}

func dbError(err error, msg string, fields ...zap.Field) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errs.ErrNotFound
	}

	log.Logger.Error(msg, append(fields, zap.Error(err))...)
	return errs.ErrDatabase
}

type mongoCredentials struct {
	c *mongo.Collection
}

func (s *mongoCredentials) FindByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	c := &entity.Credential{}
	err := s.c.FindOne(ctx, bson.M{"username": username}).Decode(c)
	if err != nil {
		return nil, dbError(err, "database error", zap.String("username", username))
	}
	return c, nil
}

func (s *mongoCredentials) Insert(ctx context.Context, c *entity.Credential) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}

	_, err := s.c.InsertOne(ctx, c)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Logger.Debug("username already taken", zap.String("username", c.Username), zap.Error(err))
			return errs.ErrUsernameTaken
		}
		return dbError(err, "failed inserting credential")
	}
	return nil
}

func (s *mongoCredentials) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return dbError(err, "failed deleting credential", zap.String("id", id.Hex()))
	}
	if res.DeletedCount == 0 {
		return errs.ErrNotFound
	}
	return nil
}

type mongoTeams struct {
	c *mongo.Collection
}

func (s *mongoTeams) List(ctx context.Context) ([]entity.Team, error) {
	cursor, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, dbError(err, "database error")
	}
	defer cursor.Close(context.Background())

	teams := make([]entity.Team, 0)
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, dbError(err, "decode error")
	}
	return teams, nil
}

func (s *mongoTeams) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Team, error) {
	t := &entity.Team{}
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(t)
	if err != nil {
		return nil, dbError(err, "database error", zap.String("teamID", id.Hex()))
	}
	return t, nil
}

func (s *mongoTeams) Insert(ctx context.Context, t *entity.Team) error {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}

	_, err := s.c.InsertOne(ctx, t)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Logger.Debug("team name already taken", zap.String("teamName", t.TeamName), zap.Error(err))
			return errs.ErrTeamNameTaken
		}
		return dbError(err, "failed inserting team")
	}
	return nil
}

func (s *mongoTeams) SetStatus(ctx context.Context, id primitive.ObjectID, status entity.TeamStatus, now time.Time) (*entity.Team, error) {
	t := &entity.Team{}
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(t)
	if err != nil {
		return nil, dbError(err, "database error", zap.String("teamID", id.Hex()))
	}
	return t, nil
}

type mongoSubmissions struct {
	c *mongo.Collection
}

func (s *mongoSubmissions) List(ctx context.Context) ([]entity.Submission, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, dbError(err, "database error")
	}
	defer cursor.Close(context.Background())

	subs := make([]entity.Submission, 0)
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, dbError(err, "decode error")
	}
	return subs, nil
}

func (s *mongoSubmissions) FindByTeam(ctx context.Context, teamID primitive.ObjectID) (*entity.Submission, error) {
	sub := &entity.Submission{}
	err := s.c.FindOne(ctx, bson.M{"team_id": teamID}).Decode(sub)
	if err != nil {
		return nil, dbError(err, "database error", zap.String("teamID", teamID.Hex()))
	}
	return sub, nil
}

func (s *mongoSubmissions) SaveLinks(ctx context.Context, teamID primitive.ObjectID, links []entity.ArtifactLink, now time.Time) (*entity.Submission, error) {
	sub := &entity.Submission{}
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"team_id": teamID},
		bson.M{
			"$set":         bson.M{"submission_document_url": links, "updatedAt": now},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "createdAt": now},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(sub)
	if err != nil {
		return nil, dbError(err, "failed saving submission", zap.String("teamID", teamID.Hex()))
	}
	return sub, nil
}

func (s *mongoSubmissions) update(ctx context.Context, teamID primitive.ObjectID, update bson.M) (*entity.Submission, error) {
	sub := &entity.Submission{}
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"team_id": teamID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(sub)
	if err != nil {
		return nil, dbError(err, "failed updating submission", zap.String("teamID", teamID.Hex()))
	}
	return sub, nil
}

func (s *mongoSubmissions) SetClassification(ctx context.Context, teamID primitive.ObjectID, c entity.Classification, now time.Time) (*entity.Submission, error) {
	if c == entity.ClassificationUnset {
		return s.update(ctx, teamID, bson.M{
			"$unset": bson.M{"status": ""},
			"$set":   bson.M{"updatedAt": now},
		})
	}

	return s.update(ctx, teamID, bson.M{"$set": bson.M{"status": c, "updatedAt": now}})
}

func (s *mongoSubmissions) SetAbstract(ctx context.Context, teamID primitive.ObjectID, abstract string, now time.Time) (*entity.Submission, error) {
	return s.update(ctx, teamID, bson.M{"$set": bson.M{"abstract": abstract, "updatedAt": now}})
}
