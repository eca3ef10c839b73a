package mongodb

import (
	"context"
	"fmt"
	"time"

	"fleetrent/internal/models"
	"fleetrent/internal/repositories/interfaces"
	"fleetrent/internal/services"
	"fleetrent/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type vehicleRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

// cachedVehicle is the cache representation of a vehicle. The API envelope
// hides Version from JSON, so the cache must carry it explicitly: a cached
// copy without its version makes every subsequent conditional append a
// guaranteed stale write.
type cachedVehicle struct {
	Vehicle *models.Vehicle `json:"vehicle"`
	Version int64           `json:"version"`
}

const fleetCacheKey = utils.CacheFleetPrefix + "active"

func NewVehicleRepository(db *mongo.Database, cache services.CacheService) interfaces.VehicleRepository {
	return &vehicleRepository{
		collection: db.Collection("vehicles"),
		cache:      cache,
	}
}

// Basic CRUD operations
func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	vehicle.ID = primitive.NewObjectID()
	vehicle.Version = 1
	vehicle.CreatedAt = time.Now()
	vehicle.UpdatedAt = time.Now()

	if vehicle.Bookings == nil {
		vehicle.Bookings = []models.Booking{}
	}

	_, err := r.collection.InsertOne(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	r.cacheVehicle(ctx, vehicle)
	r.invalidateFleetCache(ctx)
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	// Try cache first
	if vehicle := r.getVehicleFromCache(ctx, id.Hex()); vehicle != nil {
		return vehicle, nil
	}

	var vehicle models.Vehicle
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&vehicle)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	r.cacheVehicle(ctx, &vehicle)
	return &vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	res, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if res.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateVehicleCache(ctx, id.Hex())
	r.invalidateFleetCache(ctx)
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if res.DeletedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateVehicleCache(ctx, id.Hex())
	r.invalidateFleetCache(ctx)
	return nil
}

// Status operations
func (r *vehicleRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) error {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

// Search and listing
func (r *vehicleRepository) List(ctx context.Context, filter *interfaces.VehicleFilter, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.Category != "" {
			query["category"] = filter.Category
		}
	}
	return r.findVehiclesWithFilter(ctx, query, params)
}

// GetActiveFleet returns every Active vehicle with its full booking list,
// newest first, for availability classification. The result is cached for a
// short TTL and invalidated on every vehicle or booking write.
func (r *vehicleRepository) GetActiveFleet(ctx context.Context) ([]*models.Vehicle, error) {
	if vehicles := r.getFleetFromCache(ctx); vehicles != nil {
		return vehicles, nil
	}

	cursor, err := r.collection.Find(ctx,
		bson.M{"status": models.VehicleStatusActive},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find active fleet: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	r.cacheFleet(ctx, vehicles)
	return vehicles, nil
}

// Booking mutations

// AppendBooking pushes a booking only if the document still carries
// expectedVersion. A matched count of zero with the vehicle present means the
// version moved under us and the caller must re-read and retry.
func (r *vehicleRepository) AppendBooking(ctx context.Context, vehicleID primitive.ObjectID, expectedVersion int64, booking *models.Booking) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": vehicleID, "version": expectedVersion},
		bson.M{
			"$push": bson.M{"bookings": booking},
			"$inc":  bson.M{"version": 1},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to append booking: %w", err)
	}

	// Drop any cached copy either way: on success it is outdated, on a lost
	// race the retry loop must not read the stale version again.
	r.invalidateVehicleCache(ctx, vehicleID.Hex())
	r.invalidateFleetCache(ctx)

	if res.MatchedCount == 0 {
		count, countErr := r.collection.CountDocuments(ctx, bson.M{"_id": vehicleID})
		if countErr != nil {
			return fmt.Errorf("failed to check vehicle existence: %w", countErr)
		}
		if count == 0 {
			return interfaces.ErrNotFound
		}
		return interfaces.ErrStaleWrite
	}

	return nil
}

func (r *vehicleRepository) SetBookingStatus(ctx context.Context, vehicleID, bookingID primitive.ObjectID, status models.BookingStatus) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": vehicleID, "bookings._id": bookingID},
		bson.M{
			"$set": bson.M{
				"bookings.$.status": status,
				"updated_at":        time.Now(),
			},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if res.MatchedCount == 0 {
		return interfaces.ErrNotFound
	}

	r.invalidateVehicleCache(ctx, vehicleID.Hex())
	r.invalidateFleetCache(ctx)
	return nil
}

// Analytics
func (r *vehicleRepository) GetTotalCount(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *vehicleRepository) GetCountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

// Helper methods
func (r *vehicleRepository) findVehiclesWithFilter(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	if params.Search != "" {
		searchFields := []string{"brand", "model", "description"}
		searchFilter := params.GetSearchFilter(searchFields)
		if len(searchFilter) > 0 {
			filter = bson.M{
				"$and": []bson.M{filter, searchFilter},
			}
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	opts := params.GetSortOptions()
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find vehicles: %w", err)
	}
	defer cursor.Close(ctx)

	var vehicles []*models.Vehicle
	for cursor.Next(ctx) {
		var vehicle models.Vehicle
		if err := cursor.Decode(&vehicle); err != nil {
			return nil, 0, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicles = append(vehicles, &vehicle)
	}

	return vehicles, total, nil
}

// Cache operations
func (r *vehicleRepository) cacheVehicle(ctx context.Context, vehicle *models.Vehicle) {
	if r.cache != nil {
		cacheKey := utils.CacheVehiclePrefix + vehicle.ID.Hex()
		entry := cachedVehicle{Vehicle: vehicle, Version: vehicle.Version}
		r.cache.Set(ctx, cacheKey, &entry, utils.VehicleCacheTTL)
	}
}

func (r *vehicleRepository) getVehicleFromCache(ctx context.Context, vehicleID string) *models.Vehicle {
	if r.cache == nil {
		return nil
	}

	var entry cachedVehicle
	if err := r.cache.Get(ctx, utils.CacheVehiclePrefix+vehicleID, &entry); err != nil || entry.Vehicle == nil {
		return nil
	}

	entry.Vehicle.Version = entry.Version
	return entry.Vehicle
}

func (r *vehicleRepository) invalidateVehicleCache(ctx context.Context, vehicleID string) {
	if r.cache != nil {
		r.cache.Delete(ctx, utils.CacheVehiclePrefix+vehicleID)
	}
}

func (r *vehicleRepository) cacheFleet(ctx context.Context, vehicles []*models.Vehicle) {
	if r.cache == nil || len(vehicles) == 0 {
		return
	}

	entries := make([]cachedVehicle, len(vehicles))
	for i, v := range vehicles {
		entries[i] = cachedVehicle{Vehicle: v, Version: v.Version}
	}
	r.cache.Set(ctx, fleetCacheKey, entries, utils.FleetCacheTTL)
}

func (r *vehicleRepository) getFleetFromCache(ctx context.Context) []*models.Vehicle {
	if r.cache == nil {
		return nil
	}

	var entries []cachedVehicle
	if err := r.cache.Get(ctx, fleetCacheKey, &entries); err != nil || len(entries) == 0 {
		return nil
	}

	vehicles := make([]*models.Vehicle, len(entries))
	for i, entry := range entries {
		if entry.Vehicle == nil {
			return nil
		}
		entry.Vehicle.Version = entry.Version
		vehicles[i] = entry.Vehicle
	}
	return vehicles
}

func (r *vehicleRepository) invalidateFleetCache(ctx context.Context) {
	if r.cache != nil {
		r.cache.Delete(ctx, fleetCacheKey)
	}
}
