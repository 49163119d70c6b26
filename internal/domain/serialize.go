package domain

import "time"

// Every entity exposes a Dict transform producing the plain JSON mapping
// the API returns. Enum fields serialize to their string value, dates to
// ISO-8601 strings or null, and currency fields to floats or null.

const dateLayout = "2006-01-02"

func dateStr(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(dateLayout)
}

func dateTimeStr(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339)
}

func dateTimePtrStr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return dateTimeStr(*t)
}

func moneyOrNil(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}

func strOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func (u *User) Dict() map[string]any {
	return map[string]any{
		"id":              u.ID,
		"nombre_completo": u.FullName,
		"email":           u.Email,
		"rol":             string(u.Role),
		"created_at":      dateTimeStr(u.CreatedAt),
	}
}

func (l *Location) Dict() map[string]any {
	var parentName any
	if l.Parent != nil {
		parentName = l.Parent.Name
	}

	return map[string]any{
		"id":                  l.ID,
		"nombre":              l.Name,
		"descripcion":         strOrNil(l.Description),
		"parent_ubicacion_id": l.ParentID,
		"parent_ubicacion":    parentName,
	}
}

func (p *Purchase) Dict() map[string]any {
	var requester any
	if p.RequestedBy != nil {
		requester = p.RequestedBy.FullName
	}

	return map[string]any{
		"id":                p.ID,
		"numero_factura":    strOrNil(p.InvoiceNumber),
		"proveedor":         strOrNil(p.Supplier),
		"fecha_compra":      dateStr(p.PurchaseDate),
		"solicitado_por_id": p.RequestedByID,
		"solicitante":       requester,
		"created_at":        dateTimeStr(p.CreatedAt),
	}
}

// Dict serializes the asset. The default shape carries foreign keys only;
// includeRelations inlines the serialized related entities as well.
func (a *Asset) Dict(includeRelations bool) map[string]any {
	var serial any
	if a.SerialNumber != nil {
		serial = *a.SerialNumber
	}

	d := map[string]any{
		"id":                     a.ID,
		"codigo_activo":          a.Code,
		"nombre_activo":          a.Name,
		"descripcion":            strOrNil(a.Description),
		"marca":                  strOrNil(a.Brand),
		"modelo":                 strOrNil(a.Model),
		"numero_serie":           serial,
		"status":                 string(a.Status),
		"fecha_adquisicion":      dateStr(a.AcquisitionDate),
		"costo_adquisicion":      moneyOrNil(a.AcquisitionCost),
		"vida_util_meses":        a.UsefulLifeMonths,
		"valor_residual":         moneyOrNil(a.ResidualValue),
		"qr_url":                 strOrNil(a.QRURL),
		"ubicacion_id":           a.LocationID,
		"usuario_asignado_id":    a.AssignedUserID,
		"compra_id":              a.PurchaseID,
		"ultima_auditoria_fecha": dateTimePtrStr(a.LastAuditAt),
		"created_at":             dateTimeStr(a.CreatedAt),
	}

	if includeRelations {
		d["ubicacion"] = dictOrNil(a.Location)
		d["usuario_asignado"] = dictOrNilUser(a.AssignedUser)
		d["compra"] = dictOrNilPurchase(a.Purchase)
		d["ultimo_auditor"] = dictOrNilUser(a.LastAuditBy)
	}

	return d
}

func (m *Maintenance) Dict() map[string]any {
	var technician any
	if m.PerformedBy != nil {
		technician = m.PerformedBy.FullName
	}

	return map[string]any{
		"id":                  m.ID,
		"activo_id":           m.AssetID,
		"fecha_mantenimiento": dateStr(m.Date),
		"tipo_mantenimiento":  string(m.Type),
		"descripcion":         m.Description,
		"costo":               m.Cost,
		"realizado_por_id":    m.PerformedByID,
		"tecnico":             technician,
	}
}

func (m *Movement) Dict() map[string]any {
	var author any
	if m.User != nil {
		author = m.User.FullName
	}

	return map[string]any{
		"id":               m.ID,
		"activo_id":        m.AssetID,
		"usuario_id":       m.UserID,
		"fecha_cambio":     dateTimeStr(m.ChangedAt),
		"campo_modificado": strOrNil(m.FieldChanged),
		"valor_anterior":   strOrNil(m.OldValue),
		"valor_nuevo":      strOrNil(m.NewValue),
		"nota":             strOrNil(m.Note),
		"usuario":          author,
	}
}

func (a *Audit) Dict(includeDetails bool) map[string]any {
	var locationName, auditorName any
	if a.Location != nil {
		locationName = a.Location.Name
	}
	if a.Auditor != nil {
		auditorName = a.Auditor.FullName
	}

	d := map[string]any{
		"id":                    a.ID,
		"ubicacion_auditada_id": a.LocationID,
		"auditor_id":            a.AuditorID,
		"fecha_inicio":          dateTimeStr(a.StartedAt),
		"fecha_fin":             dateTimePtrStr(a.EndedAt),
		"status":                string(a.Status),
		"resumen":               strOrNil(a.Summary),
		"ubicacion":             locationName,
		"auditor":               auditorName,
	}

	if includeDetails {
		details := make([]map[string]any, 0, len(a.Details))
		for i := range a.Details {
			details = append(details, a.Details[i].Dict())
		}
		d["detalles"] = details
	}

	return d
}

func (d *AuditDetail) Dict() map[string]any {
	var assetCode any
	if d.Asset != nil {
		assetCode = d.Asset.Code
	}

	return map[string]any{
		"id":             d.ID,
		"auditoria_id":   d.AuditID,
		"activo_id":      d.AssetID,
		"resultado":      string(d.Result),
		"timestamp_scan": dateTimeStr(d.ScannedAt),
		"nota":           strOrNil(d.Note),
		"activo":         assetCode,
	}
}

func dictOrNil(l *Location) any {
	if l == nil {
		return nil
	}
	return l.Dict()
}

func dictOrNilUser(u *User) any {
	if u == nil {
		return nil
	}
	return u.Dict()
}

func dictOrNilPurchase(p *Purchase) any {
	if p == nil {
		return nil
	}
	return p.Dict()
}
