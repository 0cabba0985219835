package cmd

import (
	"driverhub/internal/adapters/out/postgres"
	"driverhub/internal/adapters/out/postgres/driverrepo"
	"driverhub/internal/adapters/out/postgres/shoprepo"
	"driverhub/internal/core/application/usecases/commands"
	"driverhub/internal/core/application/usecases/queries"
	"driverhub/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	resolver   ports.IdentityResolver
	poolCache  queries.UnclaimedPoolCache
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, poolCache queries.UnclaimedPoolCache) CompositionRoot {
	resolver := postgres.NewGormIdentityResolver(
		driverrepo.NewGormDriverRepository(gormDB, postgres.NopAggregateTracker{}),
		shoprepo.NewGormShopRepository(gormDB, postgres.NopAggregateTracker{}),
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		resolver:   resolver,
		poolCache:  poolCache,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.resolver)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f, c.resolver)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, c.resolver)
}

func (c *CompositionRoot) CreateSetDriverOnlineCommandHandler() commands.SetDriverOnlineCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDriverOnlineCommandHandler(f, c.resolver)
}

func (c *CompositionRoot) CreateSetShopOpenCommandHandler() commands.SetShopOpenCommandHandler {
	var f commands.ShopUoWFactory = FuncShopUoWFactory(func() commands.ShopUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetShopOpenCommandHandler(f, c.resolver)
}

func (c *CompositionRoot) CreateReconcileDriverActivityCommandHandler() commands.ReconcileDriverActivityCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileDriverActivityCommandHandler(f)
}

func (c *CompositionRoot) CreateGetUnclaimedOrdersQueryHandler() queries.GetUnclaimedOrdersQueryHandler {
	return queries.NewGetUnclaimedOrdersQueryHandler(c.gormDB, c.resolver, c.poolCache)
}

func (c *CompositionRoot) CreateGetDriverOrdersQueryHandler() queries.GetDriverOrdersQueryHandler {
	return queries.NewGetDriverOrdersQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateGetShopOrdersQueryHandler() queries.GetShopOrdersQueryHandler {
	return queries.NewGetShopOrdersQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateGetDriverStatisticsQueryHandler() queries.GetDriverStatisticsQueryHandler {
	return queries.NewGetDriverStatisticsQueryHandler(c.gormDB, c.resolver)
}

func (c *CompositionRoot) CreateGetShopStatisticsQueryHandler() queries.GetShopStatisticsQueryHandler {
	return queries.NewGetShopStatisticsQueryHandler(c.gormDB, c.resolver)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncShopUoWFactory func() commands.ShopUoW

func (f FuncShopUoWFactory) Create() commands.ShopUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
