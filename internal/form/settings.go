/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package form

import (
	"github.com/go-playground/validator/v10"
)

const (
	defaultTheme            = "modern"
	defaultAnimation        = "fade-in"
	defaultSubmitButtonText = "Submit"
	defaultSuccessMessage   = "Thank you! Your form has been submitted successfully."
	defaultErrorMessage     = "Please check the highlighted fields and try again."
	defaultPrimaryColor     = "#667eea"
	defaultSecondaryColor   = "#764ba2"
	defaultBackgroundStyle  = "gradient"
	defaultBorderRadius     = 12
	defaultSpacing          = "comfortable"
)

var settingsValidator = validator.New()

// Settings holds the presentation settings of a form. Unset values fall back to the defaults.
type Settings struct {
	Theme            string `json:"theme,omitempty" validate:"oneof=modern professional creative minimal elegant"`
	Animation        string `json:"animation,omitempty" validate:"oneof=fade-in slide-up slide-down zoom-in none"`
	SubmitButtonText string `json:"submit_button_text,omitempty" validate:"max=100"`
	SuccessMessage   string `json:"success_message,omitempty" validate:"max=1000"`
	ErrorMessage     string `json:"error_message,omitempty" validate:"max=1000"`
	PrimaryColor     string `json:"primary_color,omitempty" validate:"hexcolor"`
	SecondaryColor   string `json:"secondary_color,omitempty" validate:"hexcolor"`
	BackgroundStyle  string `json:"background_style,omitempty" validate:"oneof=gradient solid none"`
	BorderRadius     *int   `json:"border_radius,omitempty" validate:"min=0,max=64"`
	Spacing          string `json:"spacing,omitempty" validate:"oneof=compact comfortable spacious"`
}

// DefaultSettings returns the settings applied to a form that sets nothing.
func DefaultSettings() Settings {
	return Settings{}.withDefaults()
}

// withDefaults returns a copy of the settings with every unset value replaced by its default.
func (s Settings) withDefaults() Settings {
	if s.Theme == "" {
		s.Theme = defaultTheme
	}
	if s.Animation == "" {
		s.Animation = defaultAnimation
	}
	if s.SubmitButtonText == "" {
		s.SubmitButtonText = defaultSubmitButtonText
	}
	if s.SuccessMessage == "" {
		s.SuccessMessage = defaultSuccessMessage
	}
	if s.ErrorMessage == "" {
		s.ErrorMessage = defaultErrorMessage
	}
	if s.PrimaryColor == "" {
		s.PrimaryColor = defaultPrimaryColor
	}
	if s.SecondaryColor == "" {
		s.SecondaryColor = defaultSecondaryColor
	}
	if s.BackgroundStyle == "" {
		s.BackgroundStyle = defaultBackgroundStyle
	}
	if s.BorderRadius == nil {
		radius := defaultBorderRadius
		s.BorderRadius = &radius
	} else {
		radius := *s.BorderRadius
		s.BorderRadius = &radius
	}
	if s.Spacing == "" {
		s.Spacing = defaultSpacing
	}
	return s
}

// mergeSettings overlays the values set in update on top of base.
func mergeSettings(base Settings, update *Settings) Settings {
	if update == nil {
		return base
	}
	merged := base
	if update.Theme != "" {
		merged.Theme = update.Theme
	}
	if update.Animation != "" {
		merged.Animation = update.Animation
	}
	if update.SubmitButtonText != "" {
		merged.SubmitButtonText = update.SubmitButtonText
	}
	if update.SuccessMessage != "" {
		merged.SuccessMessage = update.SuccessMessage
	}
	if update.ErrorMessage != "" {
		merged.ErrorMessage = update.ErrorMessage
	}
	if update.PrimaryColor != "" {
		merged.PrimaryColor = update.PrimaryColor
	}
	if update.SecondaryColor != "" {
		merged.SecondaryColor = update.SecondaryColor
	}
	if update.BackgroundStyle != "" {
		merged.BackgroundStyle = update.BackgroundStyle
	}
	if update.BorderRadius != nil {
		radius := *update.BorderRadius
		merged.BorderRadius = &radius
	}
	if update.Spacing != "" {
		merged.Spacing = update.Spacing
	}
	return merged
}

// validateSettings applies the defaults and checks every value against its allowed range.
func validateSettings(s Settings) (Settings, error) {
	s = s.withDefaults()
	if err := settingsValidator.Struct(s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
