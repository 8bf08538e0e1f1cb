package response

import (
	"fmt"
	"time"

	"store-reservation/internal/handler/dto"

	"github.com/jinzhu/copier"
)

// copyInto maps same-named fields from src to dst, rendering time.Time
// values as zone-less date-times in loc.
func copyInto(dst, src any, loc *time.Location) error {
	err := copier.CopyWithOption(dst, src, copier.Option{
		Converters: []copier.TypeConverter{
			{
				SrcType: time.Time{},
				DstType: "",
				Fn: func(v any) (any, error) {
					t, ok := v.(time.Time)
					if !ok {
						return nil, fmt.Errorf("unexpected source %T", v)
					}
					return dto.FormatDateTime(t, loc), nil
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("map response: %w", err)
	}
	return nil
}
