// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities should be free of GORM tags and infrastructure concerns
// 2. Persistence models contain all GORM annotations and table mappings
// 3. Mappers convert between domain entities and persistence models
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: BaseModel and AggregateModel
// - inventory.go: inventories, inventory_settings, countings
// - counting.go: counting_details, ecart_comptages, comptage_sequences
// - masterdata.go: read models of jobs, locations, stocks, warehouses,
//   accounts and products, owned by neighbouring subsystems
package models
