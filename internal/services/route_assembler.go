package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"flight-route-service/internal/airports"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/geo"
	"flight-route-service/internal/platform/obs"
	"flight-route-service/internal/ports"
)

// routePoint is a waypoint in the working point list while a route is
// being assembled.
type routePoint struct {
	coord       domain.Coordinates
	name        string
	airport     *domain.Airport
	noDiversion bool
}

// legMeta carries per-leg airspace findings between assembly passes.
type legMeta struct {
	airspace    bool
	unavoidable bool
}

// RouteAssembler composes the planning components into full routes.
//
// Only unresolved airport identifiers and invalid requests abort a
// computation; collaborator failures and unmet constraints degrade to
// per-leg warnings on an otherwise successful result.
type RouteAssembler struct {
	Index     *airports.Index
	Airspaces ports.AirspaceStore
	Elevation ports.ElevationProvider
	Policy    Policy

	planner     DiversionPlanner
	intersector AirspaceIntersector
	terrain     TerrainEvaluator
	altitude    AltitudeSelector
}

func NewRouteAssembler(
	index *airports.Index,
	airspaces ports.AirspaceStore,
	elevation ports.ElevationProvider,
	policy Policy,
) *RouteAssembler {
	return &RouteAssembler{
		Index:     index,
		Airspaces: airspaces,
		Elevation: elevation,
		Policy:    policy,
		planner: DiversionPlanner{
			Index:            index,
			CorridorRadiusNM: policy.CorridorRadiusNM,
		},
		intersector: AirspaceIntersector{
			ClearanceNM: policy.AirspaceClearanceNM,
			RetryCap:    policy.AirspaceRetryCap,
		},
		terrain:  TerrainEvaluator{MarginFt: policy.TerrainMarginFt},
		altitude: AltitudeSelector{MagneticVariationDeg: policy.MagneticVariationDeg},
	}
}

// PlanRoute turns a route request into an ordered list of legs with
// full per-leg metadata and aggregate totals.
func (ra *RouteAssembler) PlanRoute(ctx context.Context, req domain.RouteRequest) (_ *domain.RouteResult, err error) {
	defer obs.Time(ctx, "route.assemble")(&err)

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	origin, err := ra.Index.Resolve(req.Origin)
	if err != nil {
		return nil, fmt.Errorf("plan route: origin: %w", err)
	}
	destination, err := ra.Index.Resolve(req.Destination)
	if err != nil {
		return nil, fmt.Errorf("plan route: destination: %w", err)
	}

	points := ra.subdivide(origin, destination, req.MaxLegDistanceNM)

	polys := ra.loadAirspaces(ctx, points)
	points, meta := ra.classifyAirspace(points, polys, req.AvoidAirspaces)
	nameSyntheticPoints(points)

	floors, terrainWarns := ra.terrainFloors(ctx, points, req)

	return ra.buildResult(points, meta, floors, terrainWarns, origin, destination, req), nil
}

// subdivide builds the initial point list: origin, diversion waypoints
// bounded by the leg budget, destination.
func (ra *RouteAssembler) subdivide(origin, destination domain.Airport, maxLegNM float64) []routePoint {
	exclude := map[string]struct{}{
		origin.ICAO:      {},
		destination.ICAO: {},
	}

	waypoints := ra.planner.Plan(origin.Coordinates, destination.Coordinates, maxLegNM, exclude)

	points := make([]routePoint, 0, len(waypoints)+2)
	points = append(points, routePoint{coord: origin.Coordinates, name: origin.ICAO})
	for _, wp := range waypoints {
		p := routePoint{coord: wp.Coordinates, airport: wp.Airport, noDiversion: wp.NoDiversion}
		if wp.Airport != nil {
			p.name = wp.Airport.ICAO
		}
		points = append(points, p)
	}
	points = append(points, routePoint{coord: destination.Coordinates, name: destination.ICAO})
	return points
}

// loadAirspaces queries polygons overlapping the route's bounding box.
// A store failure degrades to no airspace tagging rather than aborting.
func (ra *RouteAssembler) loadAirspaces(ctx context.Context, points []routePoint) []domain.AirspacePolygon {
	if ra.Airspaces == nil || len(points) == 0 {
		return nil
	}

	const bboxPadDeg = 1.0
	minLat, maxLat := points[0].coord.Lat, points[0].coord.Lat
	minLon, maxLon := points[0].coord.Lon, points[0].coord.Lon
	for _, p := range points[1:] {
		minLat = min(minLat, p.coord.Lat)
		maxLat = max(maxLat, p.coord.Lat)
		minLon = min(minLon, p.coord.Lon)
		maxLon = max(maxLon, p.coord.Lon)
	}

	polys, err := ra.Airspaces.PolygonsInBoundingBox(ctx,
		minLat-bboxPadDeg, minLon-bboxPadDeg, maxLat+bboxPadDeg, maxLon+bboxPadDeg)
	if err != nil {
		log.Printf("airspace store query failed, legs left untagged: %v", err)
		return nil
	}
	return polys
}

// classifyAirspace tags blocked legs and, when avoidance is requested,
// shifts their geometry around the blocking polygon via detour
// waypoints. Detoured sub-legs are clear by construction, so the scan
// always advances.
func (ra *RouteAssembler) classifyAirspace(points []routePoint, polys []domain.AirspacePolygon, avoid bool) ([]routePoint, []legMeta) {
	meta := make([]legMeta, len(points)-1)
	if len(polys) == 0 {
		return points, meta
	}

	i := 0
	for i < len(points)-1 {
		blocked := ra.intersector.Classify(points[i].coord, points[i+1].coord, polys)
		if blocked == nil {
			i++
			continue
		}

		if !avoid {
			meta[i].airspace = true
			i++
			continue
		}

		wp, ok := ra.intersector.Detour(points[i].coord, points[i+1].coord, polys)
		if !ok {
			meta[i].airspace = true
			meta[i].unavoidable = true
			i++
			continue
		}

		points = append(points[:i+1], append([]routePoint{{coord: wp}}, points[i+1:]...)...)
		meta = append(meta[:i], append([]legMeta{{airspace: true}, {airspace: true}}, meta[i+1:]...)...)
		i += 2
	}

	return points, meta
}

// nameSyntheticPoints assigns stable names to waypoints that are not
// airports so the visited-identifier list stays fully populated.
func nameSyntheticPoints(points []routePoint) {
	n := 0
	for i := range points {
		if points[i].name == "" {
			n++
			points[i].name = fmt.Sprintf("WPT%02d", n)
		}
	}
}

// terrainFloors fans out one elevation-profile call per leg with
// bounded concurrency and a per-call timeout. A failed call leaves the
// leg without a terrain floor and records a warning instead of failing
// the route.
func (ra *RouteAssembler) terrainFloors(ctx context.Context, points []routePoint, req domain.RouteRequest) ([]int, []bool) {
	nLegs := len(points) - 1
	floors := make([]int, nLegs)
	warns := make([]bool, nLegs)

	if !req.AvoidTerrain || ra.Elevation == nil {
		return floors, warns
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ra.Policy.LegConcurrency)

	for i := 0; i < nLegs; i++ {
		start, end := points[i].coord, points[i+1].coord
		g.Go(func() error {
			callCtx, cancel := context.WithTimeout(ctx, ra.Policy.CollaboratorTimeout)
			defer cancel()

			samples, err := ra.Elevation.ElevationProfile(callCtx, samplePath(start, end, ra.Policy.ElevationSampleNM))
			if err != nil {
				log.Printf("elevation profile failed leg=%d err=%v", i, err)
				warns[i] = true
				return nil
			}

			floor, ok := ra.terrain.MinimumSafeAltitude(samples)
			if !ok {
				warns[i] = true
				return nil
			}
			floors[i] = floor
			return nil
		})
	}

	// Workers only record per-leg outcomes; Wait never returns an error.
	_ = g.Wait()

	return floors, warns
}

// samplePath returns evenly spaced points along the segment, endpoints
// included.
func samplePath(start, end domain.Coordinates, spacingNM float64) []domain.Coordinates {
	dist := geo.Distance(start, end)
	if dist == 0 || spacingNM <= 0 {
		return []domain.Coordinates{start, end}
	}

	steps := int(dist / spacingNM)
	if steps < 1 {
		steps = 1
	}

	bearing := geo.InitialBearing(start, end)
	points := make([]domain.Coordinates, 0, steps+1)
	points = append(points, start)
	for i := 1; i < steps; i++ {
		points = append(points, geo.DestinationPoint(start, bearing, dist*float64(i)/float64(steps)))
	}
	points = append(points, end)
	return points
}

// buildResult computes per-leg metrics and aggregates the totals.
func (ra *RouteAssembler) buildResult(
	points []routePoint,
	meta []legMeta,
	floors []int,
	terrainWarns []bool,
	origin, destination domain.Airport,
	req domain.RouteRequest,
) *domain.RouteResult {
	speedKt := req.SpeedKnots()
	nLegs := len(points) - 1

	legs := make([]domain.Leg, 0, nLegs)
	var totalDistance, totalTime float64
	prevUsed, prevFloor := 0, 0

	for i := 0; i < nLegs; i++ {
		start, end := points[i], points[i+1]

		dist := geo.Distance(start.coord, end.coord)
		trueCourse := geo.InitialBearing(start.coord, end.coord)
		magHeading := ra.altitude.MagneticHeading(trueCourse)
		candidate := VFRCandidate(magHeading)

		floor := req.CruiseAltitudeFt
		terrainLimited := false
		if req.AvoidTerrain && floors[i] > floor {
			floor = floors[i]
			terrainLimited = true
		}

		used := EnforceMinimum(candidate, floor)
		// Altitude is monotonically non-decreasing along the route; a
		// descent is only permitted when the floor itself drops.
		if used < prevUsed && floor >= prevFloor {
			used = EnforceMinimum(used, prevUsed)
		}
		prevUsed, prevFloor = used, floor

		segType := domain.SegmentCruise
		switch {
		case i == 0:
			segType = domain.SegmentClimb
		case i == nLegs-1:
			segType = domain.SegmentDescent
		}
		if terrainLimited {
			segType = domain.SegmentTerrain
		}
		if meta[i].airspace {
			segType = domain.SegmentAirspace
		}

		leg := domain.Leg{
			Start:              start.coord,
			End:                end.coord,
			DistanceNM:         dist,
			TimeHr:             dist / speedKt,
			MagneticHeadingDeg: magHeading,
			VFRAltitudeFt:      candidate,
			AltitudeUsedFt:     used,
			Type:               segType,
			Diversion:          end.airport,
		}

		if end.noDiversion || (dist > req.MaxLegDistanceNM && end.airport == nil && i == nLegs-1) {
			leg.Warnings = append(leg.Warnings, domain.WarnNoDiversionFound)
		}
		if meta[i].unavoidable {
			leg.Warnings = append(leg.Warnings, domain.WarnAirspaceUnavoidable)
		}
		if terrainWarns[i] {
			leg.Warnings = append(leg.Warnings, domain.WarnTerrainUnavailable)
		}

		totalDistance += dist
		totalTime += leg.TimeHr
		legs = append(legs, leg)
	}

	result := &domain.RouteResult{
		Route:             make([]string, 0, len(points)),
		Legs:              legs,
		TotalDistanceNM:   totalDistance,
		TotalTimeHr:       totalTime,
		OriginCoords:      origin.Coordinates,
		DestinationCoords: destination.Coordinates,
		OverflownAirports: []string{},
		OverflownCoords:   []domain.Coordinates{},
		OverflownNames:    []string{},
	}

	for _, p := range points {
		result.Route = append(result.Route, p.name)
		if p.airport != nil {
			result.OverflownAirports = append(result.OverflownAirports, p.airport.ICAO)
			result.OverflownCoords = append(result.OverflownCoords, p.airport.Coordinates)
			result.OverflownNames = append(result.OverflownNames, p.airport.Name)
		}
	}

	return result
}
