package repository

import (
	"context"

	"portfolio_studio/internal/domain/entities"
	"portfolio_studio/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTranslationsTableName = "translation_cache"

type translationItem struct {
	Key            string `dynamodbav:"cache_key"`
	SourceLocale   string `dynamodbav:"source_locale"`
	TargetLocale   string `dynamodbav:"target_locale"`
	SourceText     string `dynamodbav:"source_text"`
	TranslatedText string `dynamodbav:"translated_text"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// TranslationCacheDynamoRepository persists computed translations in DynamoDB.
//
// Table requirements:
//   - PK: cache_key (string)
//
// Entries are content-addressed and immutable, so Put is an unconditional
// overwrite: two racing writers store the same value.

type TranslationCacheDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITranslationCacheRepository = (*TranslationCacheDynamoRepository)(nil)

func NewTranslationCacheDynamoRepository(ddb *dynamodb.Client) *TranslationCacheDynamoRepository {
	return &TranslationCacheDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSLATION_CACHE_TABLE", defaultTranslationsTableName),
	}
}

func (r *TranslationCacheDynamoRepository) Get(ctx context.Context, key string) (entities.CachedTranslation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"cache_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	if err != nil {
		return entities.CachedTranslation{}, err
	}
	if len(out.Item) == 0 {
		return entities.CachedTranslation{}, nil
	}

	var it translationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CachedTranslation{}, err
	}
	return entities.CachedTranslation{
		Key:            it.Key,
		SourceLocale:   it.SourceLocale,
		TargetLocale:   it.TargetLocale,
		SourceText:     it.SourceText,
		TranslatedText: it.TranslatedText,
		CreatedAt:      stringToTime(it.CreatedAt),
	}, nil
}

func (r *TranslationCacheDynamoRepository) Put(ctx context.Context, t entities.CachedTranslation) error {
	av, err := attributevalue.MarshalMap(translationItem{
		Key:            t.Key,
		SourceLocale:   t.SourceLocale,
		TargetLocale:   t.TargetLocale,
		SourceText:     t.SourceText,
		TranslatedText: t.TranslatedText,
		CreatedAt:      timeToString(t.CreatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
