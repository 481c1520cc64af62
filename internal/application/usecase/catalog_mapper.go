package usecase

import (
	"github.com/jhoicas/cre-directory/internal/application/dto"
	"github.com/jhoicas/cre-directory/internal/domain/catalog"
	"github.com/jhoicas/cre-directory/internal/domain/entity"
)

func toSummaries(snap *catalog.Catalog, list []*entity.Product) []dto.ProductSummaryDTO {
	items := make([]dto.ProductSummaryDTO, 0, len(list))
	for _, p := range list {
		items = append(items, toSummary(snap, p))
	}
	return items
}

func toSummary(snap *catalog.Catalog, p *entity.Product) dto.ProductSummaryDTO {
	s := dto.ProductSummaryDTO{
		Slug:         p.Slug,
		Title:        p.Title,
		Summary:      p.Summary(),
		LogoURL:      p.LogoURL,
		LogoColor:    catalog.LogoColor(p.Title),
		Initial:      catalog.Initial(p.Title),
		Categories:   nonNil(p.Categories),
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		PricingModel: p.PricingModel,
		FreeTrial:    p.HasFreeTrial(),
		FreeTier:     p.HasFreeTier(),
		IsFree:       p.IsFree,
		IsFeatured:   p.IsFeatured,
		IsVerified:   p.IsVerified,
		LastUpdated:  p.LastUpdated,
		Badges:       snap.Badges(p.Slug).Codes(),
	}
	if p.Pricing != nil {
		if p.Pricing.Model != "" {
			s.PricingModel = p.Pricing.Model
		}
		s.StartingPrice = p.Pricing.StartingPrice
	}
	return s
}

func toDetail(snap *catalog.Catalog, p *entity.Product) *dto.ProductDetailResponse {
	out := &dto.ProductDetailResponse{
		ProductSummaryDTO: toSummary(snap, p),
		URL:               p.URL,
		Domain:            p.Domain,
		Description:       p.Description,
		Deployment:        p.Deployment,
		Pros:              p.Pros,
		Cons:              p.Cons,
		Integrations:      p.Integrations,
		Audience:          dto.AudienceDTO{PropertyTypes: nonNil(p.EffectivePropertyTypes())},
	}
	for _, l := range snap.CategoryLinks(p) {
		out.CategoryLinks = append(out.CategoryLinks, dto.CategoryLinkDTO{Name: l.Name, Slug: l.Slug, Linked: l.Linked})
	}
	if out.CategoryLinks == nil {
		out.CategoryLinks = []dto.CategoryLinkDTO{}
	}
	if ta := p.TargetAudience; ta != nil {
		out.Audience.Roles = ta.Roles
		out.Audience.CompanySizes = ta.CompanySizes
	}
	if pr := p.Pricing; pr != nil {
		out.Pricing = &dto.PricingDTO{
			Model:          pr.Model,
			StartingPrice:  pr.StartingPrice,
			BillingOptions: pr.BillingOptions,
			FreeTrial:      pr.FreeTrial,
			FreeTier:       pr.FreeTier,
		}
		for _, pl := range pr.Plans {
			out.Pricing.Plans = append(out.Pricing.Plans, dto.PlanDTO{Name: pl.Name, Price: pl.Price, Description: pl.Description})
		}
	}
	for _, g := range p.FeatureGroups {
		fg := dto.FeatureGroupDTO{Name: g.Name, Features: make([]dto.FeatureDTO, 0, len(g.Features))}
		for _, f := range g.Features {
			fg.Features = append(fg.Features, dto.FeatureDTO{Name: f.Name, Description: f.Description})
		}
		out.FeatureGroups = append(out.FeatureGroups, fg)
	}
	if c := p.Company; c != nil {
		out.Company = &dto.CompanyDTO{
			Name:         c.Name,
			Founded:      c.Founded,
			Headquarters: c.Headquarters,
			Employees:    c.Employees,
			Funding:      c.Funding,
		}
	}
	return out
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		Slug:         c.Slug,
		Name:         c.Name,
		Description:  c.Description,
		ProductCount: c.ProductCount,
		Editorial:    c.Editorial,
	}
}

func toFacetCounts(list []catalog.FacetCount) []dto.FacetCountDTO {
	out := make([]dto.FacetCountDTO, 0, len(list))
	for _, f := range list {
		out = append(out, dto.FacetCountDTO{Value: f.Value, Count: f.Count})
	}
	return out
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
