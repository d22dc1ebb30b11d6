package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/minhhieuit/PermissionAccessControl/core/enrich"
)

// tenantUsersCollection holds one document per user-to-tenant link.
const tenantUsersCollection = "tenant_users"

// tenantUserDoc is the stored shape of a tenant link.
type tenantUserDoc struct {
	UserID      string `bson:"user_id"`
	TenantKey   string `bson:"tenant_key"`
	DisplayName string `bson:"display_name,omitempty"`
}

// TenantDirectory resolves user-to-tenant links from a MongoDB collection.
// It satisfies enrich.TenantDirectory.
type TenantDirectory struct {
	collection *mongo.Collection
}

// NewTenantDirectory creates a directory over the given database handle.
func NewTenantDirectory(db *mongo.Database) *TenantDirectory {
	if db == nil {
		panic("mongo: database is required")
	}
	return &TenantDirectory{collection: db.Collection(tenantUsersCollection)}
}

// LookupTenantByUserID returns the tenant key the user is linked to. The
// lookup is unscoped across all tenants; a user with no link yields
// enrich.ErrTenantNotFound.
func (d *TenantDirectory) LookupTenantByUserID(ctx context.Context, userID string) (string, error) {
	var doc tenantUserDoc
	err := d.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", enrich.ErrTenantNotFound
		}
		return "", err
	}

	return doc.TenantKey, nil
}
