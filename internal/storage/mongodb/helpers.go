package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// findOne ищет один документ по фильтру; (nil, nil) при отсутствии документа.
func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.D) (*T, error) {
	var result T
	if err := col.FindOne(ctx, filter).Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

// findMany ищет документы по фильтру; при отсутствии совпадений возвращает
// пустой срез, а не nil, чтобы в ответе сериализовался [].
func findMany[T any](ctx context.Context, col *mongo.Collection, filter bson.D, opts ...options.Lister[options.FindOptions]) ([]*T, error) {
	cursor, err := col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []*T{}
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		results = append(results, &item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// insertOne вставляет документ и возвращает присвоенный ObjectID.
func insertOne(ctx context.Context, col *mongo.Collection, doc any) (bson.ObjectID, error) {
	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// deleteByID удаляет документ по _id, возвращает число удалённых документов.
func deleteByID(ctx context.Context, col *mongo.Collection, id bson.ObjectID) (int64, error) {
	res, err := col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// updateByID применяет $set к документу по _id.
func updateByID(ctx context.Context, col *mongo.Collection, id bson.ObjectID, fields bson.D) (int64, error) {
	res, err := col.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
